package storage

import (
	"io"

	"trex/internal/domain"
)

// Storage persists and loads manifests (e.g. for the view command).
type Storage interface {
	Encode(w io.Writer, m domain.Manifest) error
	Save(m domain.Manifest) error
	Load() (domain.Manifest, error)
}

// JSONStorage stores a manifest as a single line of JSON at the configured path.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes the given JSON file.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the file the storage reads and writes
func (s *JSONStorage) Path() string {
	return s.path
}
