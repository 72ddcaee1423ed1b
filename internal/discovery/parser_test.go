package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExtractTests(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name:     "top level function",
			source:   "def test_foo(): pass",
			expected: []string{"test_foo"},
		},
		{
			name:     "class method",
			source:   "class TestBar:\n    def test_baz(self):\n        pass\n",
			expected: []string{"TestBar::test_baz"},
		},
		{
			name: "top level then class",
			source: `
def test_standalone():
    pass

class TestFoo:
    def test_method(self):
        pass
`,
			expected: []string{"test_standalone", "TestFoo::test_method"},
		},
		{
			name: "nested class attributes to outer class",
			source: `
class TestOuter:
    class TestInner:
        def test_inner(self):
            pass
`,
			expected: []string{"TestOuter::test_inner"},
		},
		{
			name: "top level function clears class",
			source: `
class TestA:
    def test_one(self):
        pass

def test_two():
    pass

    def test_orphan():
        pass
`,
			expected: []string{"TestA::test_one", "test_two"},
		},
		{
			name: "second class replaces first",
			source: `
class TestA:
    def test_one(self):
        pass

class TestB:
    def test_two(self):
        pass
`,
			expected: []string{"TestA::test_one", "TestB::test_two"},
		},
		{
			name:     "indented function without class is dropped",
			source:   "if True:\n    def test_hidden():\n        pass\n",
			expected: nil,
		},
		{
			name:     "non test class does not set scope",
			source:   "class Helper:\n    def test_x(self):\n        pass\n",
			expected: nil,
		},
		{
			name:     "class with bases is not recognized",
			source:   "class TestBase(object):\n    def test_x(self):\n        pass\n",
			expected: nil,
		},
		{
			name:     "space before colon",
			source:   "class TestSpaced :\n\tdef test_tab(self):\n\t\tpass\n",
			expected: []string{"TestSpaced::test_tab"},
		},
		{
			name:     "space before paren",
			source:   "def test_gap (x):\n    pass\n",
			expected: []string{"test_gap"},
		},
		{
			name:     "windows line endings",
			source:   "class TestWin:\r\n    def test_crlf(self):\r\n        pass\r\n",
			expected: []string{"TestWin::test_crlf"},
		},
		{
			name:     "unicode identifiers",
			source:   "def test_café():\n    pass\n",
			expected: []string{"test_café"},
		},
		{
			name:     "bare prefixes are not tests",
			source:   "class Test:\n    pass\ndef test_():\n    pass\n",
			expected: nil,
		},
		{
			name:     "async functions are not recognized",
			source:   "async def test_async():\n    pass\n",
			expected: nil,
		},
		{
			name:     "duplicates are kept in order",
			source:   "def test_dup():\n    pass\ndef test_dup():\n    pass\n",
			expected: []string{"test_dup", "test_dup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTests(tt.source)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestExtractTests_Empty(t *testing.T) {
	for _, source := range []string{"", "def foo(): pass", "class Bar: pass", "x = 1\n"} {
		if got := ExtractTests(source); len(got) != 0 {
			t.Errorf("expected no tests for %q, got %v", source, got)
		}
	}
}

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test_sample.py")
	content := `
def test_ok():
    pass

class TestFoo:
    def test_bar(self):
        pass

    def helper(self):
        pass
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds tests in order", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"test_ok", "TestFoo::test_bar"}
		if !reflect.DeepEqual(testCases, expected) {
			t.Errorf("expected %v, got %v", expected, testCases)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases(filepath.Join(tmpDir, "missing.py"))
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})

	t.Run("returns error for invalid utf-8", func(t *testing.T) {
		binFile := filepath.Join(tmpDir, "test_binary.py")
		if err := os.WriteFile(binFile, []byte("def test_x():\n\xff\xfe\n"), 0644); err != nil {
			t.Fatalf("failed to write binary file: %v", err)
		}

		_, err := parser.FindTestCases(binFile)
		if !errors.Is(err, ErrNotUTF8) {
			t.Errorf("expected ErrNotUTF8, got %v", err)
		}
	})
}
