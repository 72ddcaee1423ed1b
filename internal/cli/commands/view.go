package commands

import (
	"github.com/spf13/cobra"
	"trex/internal/config"
	"trex/internal/domain"
	"trex/internal/storage"
	"trex/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	scan   scanFunc
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand. A nil viewer uses the TUI manifest viewer.
func NewViewCommand(cfg *config.Config, scan scanFunc, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		scan:   scan,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	root := vc.config.GetRootPath(args)

	var m domain.Manifest
	if from := vc.config.Flags.From; from != "" {
		loaded, err := storage.NewJSONStorage(from).Load()
		if err != nil {
			return err
		}
		m, root = loaded, from
	} else {
		scanned, _, err := vc.scan(root)
		if err != nil {
			return err
		}
		m = scanned
	}

	viewer := vc.viewer
	if viewer == nil {
		viewer = ui.NewManifestViewer(root)
	}
	return viewer.View(m)
}
