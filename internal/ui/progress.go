package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows scan progress as a spinner, since the number of files is unknown up front
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress spinner writing to w (normally stderr)
func NewProgressBar(w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update updates the spinner with scanned and matched file counts
func (p *ProgressBar) Update(scanned, matched int) {
	p.bar.Describe(describe(scanned, matched))
	p.bar.Set(scanned)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describe(scanned, matched int) string {
	return color.CyanString("Scanning files: ") +
		color.GreenString("[with tests: %d", matched) +
		" | " +
		color.WhiteString("scanned: %d]", scanned)
}
