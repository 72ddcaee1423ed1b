package manifest

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"trex/internal/discovery"
	"trex/internal/domain"
)

// Progress receives updates while files are scanned
type Progress interface {
	Update(scanned, matched int)
	Finish()
}

// Stats summarizes a single build
type Stats struct {
	Candidates int           // Files whose name matched the glob
	Matched    int           // Files that yielded at least one test
	Skipped    int           // Files that could not be read or decoded
	Tests      int           // Total test identifiers
	Duration   time.Duration // Time spent scanning
}

// Option configures a Builder
type Option func(*Builder)

// WithProgress reports scan progress to p
func WithProgress(p Progress) Option {
	return func(b *Builder) {
		b.progress = p
	}
}

// WithLogger sets the logger used for per-file diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// Builder walks a tree and assembles a Manifest
type Builder struct {
	scanner  *discovery.Scanner
	parser   *discovery.Parser
	progress Progress
	logger   *slog.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(scanner *discovery.Scanner, parser *discovery.Parser, opts ...Option) *Builder {
	b := &Builder{
		scanner: scanner,
		parser:  parser,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build scans root for files matching glob and returns the manifest sorted by path.
// Files that cannot be read are skipped; only an invalid root is an error.
func (b *Builder) Build(root string, glob *discovery.GlobPattern) (domain.Manifest, Stats, error) {
	var stats Stats
	startTime := time.Now()

	root = filepath.Clean(root)
	files, err := b.scanner.Scan(root, glob)
	if err != nil {
		return nil, stats, err
	}
	stats.Candidates = len(files)

	manifest := domain.Manifest{}
	for i, path := range files {
		tests, err := b.parser.FindTestCases(path)
		if err != nil {
			stats.Skipped++
			b.logger.Debug("skipping unreadable file", "path", path, "err", err)
		} else if len(tests) > 0 {
			manifest = append(manifest, domain.FileTests{
				File:  relativePath(root, path),
				Tests: tests,
			})
			stats.Tests += len(tests)
		}

		if b.progress != nil {
			b.progress.Update(i+1, len(manifest))
		}
	}
	if b.progress != nil {
		b.progress.Finish()
	}

	sort.SliceStable(manifest, func(i, j int) bool {
		return manifest[i].File < manifest[j].File
	})

	stats.Matched = len(manifest)
	stats.Duration = time.Since(startTime)
	b.logger.Debug("scan complete",
		"root", root,
		"pattern", glob.String(),
		"candidates", stats.Candidates,
		"files", stats.Matched,
		"tests", stats.Tests,
		"skipped", stats.Skipped,
	)

	return manifest, stats, nil
}

// relativePath expresses path relative to root with forward slashes
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	return strings.ReplaceAll(rel, `\`, "/")
}
