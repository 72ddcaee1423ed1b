package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"trex/internal/domain"
)

var _ Storage = (*JSONStorage)(nil)

// ErrNoPath is returned when Save or Load is used without a file path
var ErrNoPath = errors.New("no manifest file configured")

// Encode writes the manifest as one line of JSON followed by a newline.
// A nil manifest is written as an empty array.
func (s *JSONStorage) Encode(w io.Writer, m domain.Manifest) error {
	data, err := marshal(m)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Save writes the manifest to the configured JSON file.
func (s *JSONStorage) Save(m domain.Manifest) error {
	if s.path == "" {
		return ErrNoPath
	}
	data, err := marshal(m)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads a manifest from the configured JSON file.
func (s *JSONStorage) Load() (domain.Manifest, error) {
	if s.path == "" {
		return nil, ErrNoPath
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read manifest file: %w", err)
	}
	var m domain.Manifest
	if err := json.Unmarshal(bytes.TrimSpace(data), &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

func marshal(m domain.Manifest) ([]byte, error) {
	if m == nil {
		m = domain.Manifest{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return buf.Bytes(), nil
}
