package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestProgressBar(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	p := NewProgressBar(&buf)
	p.Update(3, 1)
	p.Finish()

	if !strings.Contains(buf.String(), "Scanning files") {
		t.Errorf("expected description in output, got %q", buf.String())
	}
}
