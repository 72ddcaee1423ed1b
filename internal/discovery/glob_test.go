package discovery

import (
	"errors"
	"testing"
)

func TestGlobPattern_Match(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		expected bool
	}{
		{name: "default pattern matches", pattern: "test_*.py", input: "test_foo.py", expected: true},
		{name: "default pattern matches longer name", pattern: "test_*.py", input: "test_operations.py", expected: true},
		{name: "default pattern rejects missing prefix", pattern: "test_*.py", input: "foo.py", expected: false},
		{name: "default pattern rejects other extension", pattern: "test_*.py", input: "test_foo.txt", expected: false},
		{name: "star matches short name", pattern: "*.py", input: "a.py", expected: true},
		{name: "star matches prefixed name", pattern: "*.py", input: "test_foo.py", expected: true},
		{name: "dot is literal", pattern: "*.py", input: "axpy", expected: false},
		{name: "must end with extension", pattern: "*.py", input: "a.pyc", expected: false},
		{name: "star matches empty", pattern: "test_*.py", input: "test_.py", expected: true},
		{name: "question mark matches one char", pattern: "test_?.py", input: "test_a.py", expected: true},
		{name: "question mark rejects two chars", pattern: "test_?.py", input: "test_ab.py", expected: false},
		{name: "question mark rejects zero chars", pattern: "test_?.py", input: "test_.py", expected: false},
		{name: "hyphen passes through", pattern: "my-test.py", input: "my-test.py", expected: true},
		{name: "plus is literal", pattern: "a+b.py", input: "a+b.py", expected: true},
		{name: "plus is not a quantifier", pattern: "a+b.py", input: "aab.py", expected: false},
		{name: "brackets are literal", pattern: "[ab].py", input: "[ab].py", expected: true},
		{name: "brackets are not a class", pattern: "[ab].py", input: "a.py", expected: false},
		{name: "anchored at start", pattern: "test.py", input: "mytest.py", expected: false},
		{name: "anchored at end", pattern: "test.py", input: "test.py.bak", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := CompileGlob(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := g.Match(tt.input); got != tt.expected {
				t.Errorf("pattern %q on %q: expected %v, got %v", tt.pattern, tt.input, tt.expected, got)
			}
		})
	}
}

func TestGlobPattern_LiteralPatterns(t *testing.T) {
	literals := []string{"conftest.py", "setup.cfg", "README", "a_b-c.txt", "x(1).py", "$money^.py"}

	for _, literal := range literals {
		t.Run(literal, func(t *testing.T) {
			g := MustCompileGlob(literal)
			if !g.Match(literal) {
				t.Errorf("expected %q to match itself", literal)
			}
			for _, other := range []string{literal + "x", "x" + literal, ""} {
				if g.Match(other) {
					t.Errorf("expected %q not to match %q", literal, other)
				}
			}
		})
	}
}

func TestCompileGlob_Errors(t *testing.T) {
	t.Run("empty pattern is rejected", func(t *testing.T) {
		_, err := CompileGlob("")
		if !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("expected ErrInvalidPattern, got %v", err)
		}
	})

	t.Run("string returns source", func(t *testing.T) {
		g := MustCompileGlob("test_*.py")
		if g.String() != "test_*.py" {
			t.Errorf("expected test_*.py, got %s", g.String())
		}
	})
}
