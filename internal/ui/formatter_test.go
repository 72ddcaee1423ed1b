package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"trex/internal/domain"
	"trex/internal/manifest"
)

var sample = domain.Manifest{
	{File: "test_a.py", Tests: []string{"test_one", "TestA::test_two"}},
	{File: "sub/test_b.py", Tests: []string{"test_three"}},
}

func TestFormatter_PrintManifest(t *testing.T) {
	color.NoColor = true

	t.Run("files only", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintManifest(sample, false)

		expected := "Found 2 test file(s):\n\n" +
			"├── test_a.py (2)\n" +
			"└── sub/test_b.py (1)\n"
		if buf.String() != expected {
			t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
		}
	})

	t.Run("with tests", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintManifest(sample, true)

		expected := "Found 2 test file(s) with 3 test(s):\n\n" +
			"├── test_a.py\n" +
			"│   ├── test_one\n" +
			"│   └── TestA::test_two\n" +
			"└── sub/test_b.py\n" +
			"    └── test_three\n"
		if buf.String() != expected {
			t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
		}
	})
}

func TestFormatter_PrintNodeIDs(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf).PrintNodeIDs(sample)

	expected := "test_a.py::test_one\ntest_a.py::TestA::test_two\nsub/test_b.py::test_three\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatter_PrintStats(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	NewFormatter(&buf).PrintStats(manifest.Stats{Candidates: 4, Matched: 2, Tests: 3, Skipped: 1})

	out := buf.String()
	for _, want := range []string{"Scanned 4 file(s)", "2 with tests", "3 test(s)", "1 unreadable"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}
