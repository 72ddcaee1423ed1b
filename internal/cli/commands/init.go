package commands

import (
	"trex/internal/config"
	"trex/internal/logger"
	"trex/internal/scaffold"

	"github.com/spf13/cobra"
)

// InitCommand handles the init command
type InitCommand struct {
	config *config.Config
}

// NewInitCommand creates a new InitCommand
func NewInitCommand(cfg *config.Config) *InitCommand {
	return &InitCommand{config: cfg}
}

// Execute runs the command. Declining or an existing file are not errors.
func (ic *InitCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := config.DefaultInitDir
	if len(args) > 0 {
		dir = args[0]
	}

	initializer := scaffold.New(dir)
	outcome, err := initializer.Run(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	logger.Debug("init finished", "path", initializer.Path(), "outcome", outcome.String())
	return nil
}
