package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotDirectory is returned when the scan root is missing or not a directory
var ErrRootNotDirectory = errors.New("root is not a directory")

// Scanner scans for test files in a directory, following symbolic links
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directory names to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all regular files under root whose base name matches the glob.
// Unreadable directories, dangling links and symlink cycles are skipped silently.
// Paths are returned in traversal order, which is lexical within each directory.
func (s *Scanner) Scan(root string, glob *GlobPattern) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	var testFiles []string
	s.walk(root, glob, make(map[string]bool), &testFiles)
	return testFiles, nil
}

// walk descends into dir. ancestors holds the resolved paths of the directories on
// the current descent chain so a link back to one of them is not followed again.
func (s *Scanner) walk(dir string, glob *GlobPattern, ancestors map[string]bool, testFiles *[]string) {
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil || ancestors[realDir] {
		return
	}
	ancestors[realDir] = true
	defer delete(ancestors, realDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			mode = info.Mode().Type()
		}

		if mode.IsDir() {
			if s.skipDirs[entry.Name()] {
				continue
			}
			s.walk(path, glob, ancestors, testFiles)
			continue
		}

		if mode.IsRegular() && glob.Match(entry.Name()) {
			*testFiles = append(*testFiles, path)
		}
	}
}
