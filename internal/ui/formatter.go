package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"trex/internal/domain"
	"trex/internal/manifest"
)

// Formatter formats and displays manifests for humans
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

var (
	fileColor  = color.New(color.FgCyan)
	testColor  = color.New(color.FgYellow)
	titleColor = color.New(color.FgGreen)
)

// PrintManifest prints the files of a manifest as a tree, optionally with their tests
func (f *Formatter) PrintManifest(m domain.Manifest, showTests bool) {
	if showTests {
		titleColor.Fprintf(f.out, "Found %d test file(s) with %d test(s):\n\n", len(m), m.TestCount())
	} else {
		titleColor.Fprintf(f.out, "Found %d test file(s):\n\n", len(m))
	}

	for i, entry := range m {
		isLastFile := i == len(m)-1
		if isLastFile {
			fileColor.Fprintf(f.out, "└── %s", entry.File)
		} else {
			fileColor.Fprintf(f.out, "├── %s", entry.File)
		}
		if !showTests {
			fmt.Fprintf(f.out, " (%d)\n", len(entry.Tests))
			continue
		}
		fmt.Fprintln(f.out)

		for j, test := range entry.Tests {
			isLastCase := j == len(entry.Tests)-1

			var prefix string
			if isLastFile {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Fprintf(f.out, "%s%s\n", prefix, testColor.Sprint(test))
		}
	}
}

// PrintNodeIDs prints one "<file>::<test>" per line, in manifest order
func (f *Formatter) PrintNodeIDs(m domain.Manifest) {
	for _, id := range m.NodeIDs() {
		fmt.Fprintln(f.out, id)
	}
}

// PrintStats prints a one-line summary of a scan
func (f *Formatter) PrintStats(stats manifest.Stats) {
	fmt.Fprintf(f.out, "\nScanned %d file(s) in %s: %s, %s",
		stats.Candidates,
		stats.Duration.Round(time.Millisecond),
		color.GreenString("%d with tests", stats.Matched),
		color.YellowString("%d test(s)", stats.Tests),
	)
	if stats.Skipped > 0 {
		fmt.Fprintf(f.out, ", %s", color.RedString("%d unreadable", stats.Skipped))
	}
	fmt.Fprintln(f.out)
}
