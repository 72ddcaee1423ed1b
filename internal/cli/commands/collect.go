package commands

import (
	"trex/internal/config"
	"trex/internal/logger"
	"trex/internal/manifest"
	"trex/internal/storage"
	"trex/internal/ui"

	"github.com/spf13/cobra"
)

// CollectCommand handles the collect command
type CollectCommand struct {
	config *config.Config
	scan   scanFunc
}

// NewCollectCommand creates a new CollectCommand
func NewCollectCommand(cfg *config.Config, scan scanFunc) *CollectCommand {
	return &CollectCommand{
		config: cfg,
		scan:   scan,
	}
}

// Execute runs the command
func (cc *CollectCommand) Execute(cmd *cobra.Command, args []string) error {
	root := cc.config.GetRootPath(args)

	var opts []manifest.Option
	if cc.config.Flags.Progress {
		opts = append(opts, manifest.WithProgress(ui.NewProgressBar(cmd.ErrOrStderr())))
	}

	m, stats, err := cc.scan(root, opts...)
	if err != nil {
		return err
	}

	st := storage.NewJSONStorage(cc.config.OutputFile)
	if cc.config.OutputFile == "" {
		return st.Encode(cmd.OutOrStdout(), m)
	}

	if err := st.Save(m); err != nil {
		return err
	}
	logger.Info("manifest written", "path", st.Path(), "files", stats.Matched, "tests", stats.Tests)
	return nil
}
