package scaffold

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// FileName is the file written by init
const FileName = "conftest.py"

//go:embed templates/conftest.py
var conftestTemplate string

// Template returns the static conftest.py contents
func Template() string {
	return conftestTemplate
}

// Outcome describes what Run did
type Outcome int

const (
	// OutcomeNone is returned alongside an error
	OutcomeNone Outcome = iota
	// OutcomeExists means the file was already present and nothing was written
	OutcomeExists
	// OutcomeWritten means the template was written
	OutcomeWritten
	// OutcomeSkipped means the user declined
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeExists:
		return "exists"
	case OutcomeWritten:
		return "written"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// Initializer writes the pytest integration file into a directory
type Initializer struct {
	dir string
}

// New creates an Initializer for dir
func New(dir string) *Initializer {
	return &Initializer{dir: dir}
}

// Path returns the target file path
func (i *Initializer) Path() string {
	return filepath.Join(i.dir, FileName)
}

// Run writes conftest.py after asking for confirmation on out and reading the
// answer from in. An existing file is left untouched.
func (i *Initializer) Run(in io.Reader, out io.Writer) (Outcome, error) {
	info, err := os.Stat(i.dir)
	if err != nil || !info.IsDir() {
		return OutcomeNone, fmt.Errorf("not a directory: %s", i.dir)
	}

	target := i.Path()
	if _, err := os.Stat(target); err == nil {
		color.New(color.FgYellow).Fprintf(out, "%s already exists in %s\n", FileName, i.dir)
		return OutcomeExists, nil
	}

	fmt.Fprintf(out, "No %s detected. Generate one? [y/N] ", FileName)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return OutcomeNone, fmt.Errorf("could not read input: %w", err)
	}

	if !confirmed(answer) {
		fmt.Fprintln(out, "Skipped.")
		return OutcomeSkipped, nil
	}

	if err := os.WriteFile(target, []byte(conftestTemplate), 0644); err != nil {
		return OutcomeNone, fmt.Errorf("failed to write %s: %w", target, err)
	}

	color.New(color.FgGreen).Fprintf(out, "Wrote %s\n", target)
	return OutcomeWritten, nil
}

func confirmed(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
