package config

const (
	// DefaultRootPath is the default scan root
	DefaultRootPath = "."
	// DefaultPattern is the default test file glob
	DefaultPattern = "test_*.py"
	// DefaultInitDir is the default directory for init
	DefaultInitDir = "."
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
)

// Environment variables that override defaults
const (
	EnvPattern = "TREX_PATTERN"
	EnvOutput  = "TREX_OUTPUT"
	EnvIgnore  = "TREX_IGNORE"
)

// DefaultPathsToIgnore are the directory names skipped when scanning.
// Empty so every reachable directory is scanned unless configured otherwise.
var DefaultPathsToIgnore = []string{}
