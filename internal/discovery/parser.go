package discovery

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotUTF8 is returned for files whose content is not valid UTF-8 text
var ErrNotUTF8 = errors.New("file is not valid UTF-8")

// Word characters follow Unicode rules so identifiers like test_café are picked up.
const wordChars = `[\p{L}\p{M}\p{Nd}\p{Pc}]`

var (
	// Matches: class TestSomething:
	classPattern = regexp.MustCompile(`^class (Test` + wordChars + `+)\s*:`)
	// Matches: def test_something(
	funcPattern = regexp.MustCompile(`^def (test_` + wordChars + `+)\s*\(`)
)

// Parser parses Python test files to extract test identifiers
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestCases reads a test file and returns its test identifiers in source order
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", filePath, ErrNotUTF8)
	}

	return ExtractTests(string(content)), nil
}

// ExtractTests scans source text line by line and returns test identifiers.
//
// Top-level functions are returned bare ("test_foo"). Functions indented under a
// class declared at column zero are returned as "TestClass::test_method". Only one
// level of class is tracked: a nested class does not replace the enclosing one, so
// its methods are attributed to the outer class. Indented functions with no
// enclosing class are dropped.
func ExtractTests(source string) []string {
	var tests []string
	currentClass := ""

	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		indent := len(line) - len(trimmed)

		if match := classPattern.FindStringSubmatch(trimmed); match != nil {
			if indent == 0 {
				currentClass = match[1]
			}
			continue
		}

		match := funcPattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}

		testName := match[1]
		if indent == 0 {
			currentClass = ""
			tests = append(tests, testName)
			continue
		}

		if currentClass != "" {
			tests = append(tests, currentClass+"::"+testName)
		}
	}

	return tests
}
