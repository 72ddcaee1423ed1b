package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"trex/internal/config"
	"trex/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	scan   scanFunc
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, scan scanFunc) *ListCommand {
	return &ListCommand{
		config: cfg,
		scan:   scan,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	m, stats, err := lc.scan(lc.config.GetRootPath(args))
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	if lc.config.Flags.NodeIDs {
		formatter.PrintNodeIDs(m)
		return nil
	}

	if len(m) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}

	formatter.PrintManifest(m, lc.config.Flags.ShowTests)
	formatter.PrintStats(stats)
	return nil
}
