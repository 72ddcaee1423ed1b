package main

import (
	"os"

	"trex/internal/cli"
	"trex/internal/cli/commands"
	"trex/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "trex",
		Short:         "Fast pytest test discovery",
		Long:          `Scan a project for Python test files and emit an ordered manifest of test identifiers that a pytest conftest.py can use to filter and order collection.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Load config from defaults, .env and environment
	cfg := config.Load()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
