package ui

import "trex/internal/domain"

// Viewer displays a manifest interactively
type Viewer interface {
	View(m domain.Manifest) error
}
