package discovery

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is returned when a filename glob cannot be compiled
var ErrInvalidPattern = errors.New("invalid glob pattern")

// GlobPattern matches bare file names against a compiled glob.
// Supports * (any sequence) and ? (exactly one character); there are no character classes.
type GlobPattern struct {
	pattern string
	re      *regexp.Regexp
}

// CompileGlob compiles a glob into an anchored matcher
func CompileGlob(pattern string) (*GlobPattern, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	re, err := regexp.Compile(globToRegexp(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &GlobPattern{pattern: pattern, re: re}, nil
}

// MustCompileGlob is like CompileGlob but panics on an invalid pattern
func MustCompileGlob(pattern string) *GlobPattern {
	g, err := CompileGlob(pattern)
	if err != nil {
		panic(err)
	}
	return g
}

// Match reports whether the whole file name matches the glob
func (g *GlobPattern) Match(name string) bool {
	return g.re.MatchString(name)
}

// String returns the source glob
func (g *GlobPattern) String() string {
	return g.pattern
}

func globToRegexp(glob string) string {
	var b strings.Builder
	b.WriteString("(?s)^")
	for _, c := range glob {
		switch {
		case c == '.':
			b.WriteString(`\.`)
		case c == '*':
			b.WriteString(".*")
		case c == '?':
			b.WriteString(".")
		case isPassthrough(c):
			b.WriteRune(c)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return b.String()
}

func isPassthrough(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '_' || c == '-'
}
