package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Scan settings
	RootPath string
	Pattern  string

	// Output settings
	OutputFile string

	// Directory names to skip when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Pattern   string
	Output    string
	From      string
	Ignore    []string
	Progress  bool
	ShowTests bool
	NodeIDs   bool
	Verbose   bool
	LogJSON   bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		RootPath: DefaultRootPath,
		Pattern:  DefaultPattern,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the .env file in the working directory
// and environment overrides. A missing .env file is not an error.
func Load() *Config {
	// Existing environment variables take precedence over .env values
	_ = godotenv.Load(DefaultEnvFile)

	cfg := New()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvPattern)); v != "" {
		c.Pattern = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv(EnvIgnore); v != "" {
		c.PathsToIgnore = splitList(v)
	}
}

// ApplyFlags copies parsed flags into the config; set flags win over env and defaults
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.Output != "" {
		c.OutputFile = flags.Output
	}
	if len(flags.Ignore) > 0 {
		c.PathsToIgnore = append([]string(nil), flags.Ignore...)
	}
}

// GetRootPath returns the scan root from the first positional argument, or the default
func (c *Config) GetRootPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return filepath.Clean(args[0])
	}
	return c.RootPath
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
