package commands

import (
	"trex/internal/cli"
	"trex/internal/config"
	"trex/internal/discovery"
	"trex/internal/domain"
	"trex/internal/logger"
	"trex/internal/manifest"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Collect *CollectCommand
	Init    *InitCommand
	List    *ListCommand
	View    *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	testCaseParser := discovery.NewParser()
	scan := newScanFunc(cfg, testCaseParser)

	return &Commands{
		Collect: NewCollectCommand(cfg, scan),
		Init:    NewInitCommand(cfg),
		List:    NewListCommand(cfg, scan),
		View:    NewViewCommand(cfg, scan, nil),
	}
}

// scanFunc builds a manifest for root using the current config
type scanFunc func(root string, opts ...manifest.Option) (domain.Manifest, manifest.Stats, error)

// newScanFunc compiles the pattern and builds the scanner on each call, after flags are applied
func newScanFunc(cfg *config.Config, parser *discovery.Parser) scanFunc {
	return func(root string, opts ...manifest.Option) (domain.Manifest, manifest.Stats, error) {
		glob, err := discovery.CompileGlob(cfg.Pattern)
		if err != nil {
			return nil, manifest.Stats{}, err
		}

		scanner := discovery.NewScanner(cfg.PathsToIgnore)
		opts = append([]manifest.Option{manifest.WithLogger(logger.Get())}, opts...)
		builder := manifest.NewBuilder(scanner, parser, opts...)
		return builder.Build(root, glob)
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flags.LogJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger.Init(flags.Verbose, flags.LogJSON)
		return nil
	}

	// Collect command
	collectCmd := &cobra.Command{
		Use:     "collect <root-dir>",
		Short:   "Discover Python tests and print a JSON manifest",
		Long:    "Scan a directory tree for test files and print the ordered file/test manifest as one line of JSON",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Collect.Execute,
		PreRunE: applyFlags,
	}
	collectCmd.Flags().StringVar(&flags.Pattern, "pattern", "", "Glob pattern for test file names (default \""+config.DefaultPattern+"\")")
	collectCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the manifest to a file instead of stdout")
	collectCmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Directory names to skip while scanning")
	collectCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show scan progress on stderr")
	rootCmd.AddCommand(collectCmd)

	// Init command
	initCmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   "Create conftest.py in the project dir if missing",
		Long:    "Generate a pytest conftest.py that uses trex for test collection (prompts before writing)",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Init.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(initCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [root-dir]",
		Short:   "List discovered tests",
		Long:    "Scan and list test files and test identifiers as a tree",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVar(&flags.Pattern, "pattern", "", "Glob pattern for test file names (default \""+config.DefaultPattern+"\")")
	listCmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Directory names to skip while scanning")
	listCmd.Flags().BoolVarP(&flags.ShowTests, "tests", "t", false, "List test identifiers under each file")
	listCmd.Flags().BoolVar(&flags.NodeIDs, "node-ids", false, "Print one <file>::<test> node id per line")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view [root-dir]",
		Short:   "Browse discovered tests interactively",
		Long:    "Display the manifest in an interactive viewer, scanning root-dir or loading a saved manifest",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	viewCmd.Flags().StringVar(&flags.Pattern, "pattern", "", "Glob pattern for test file names (default \""+config.DefaultPattern+"\")")
	viewCmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Directory names to skip while scanning")
	viewCmd.Flags().StringVar(&flags.From, "from", "", "Load a manifest saved with collect --output instead of scanning")
	rootCmd.AddCommand(viewCmd)
}
