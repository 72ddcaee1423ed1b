package cli

import "trex/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Pattern:   f.Pattern,
		Output:    f.Output,
		From:      f.From,
		Ignore:    f.Ignore,
		Progress:  f.Progress,
		ShowTests: f.ShowTests,
		NodeIDs:   f.NodeIDs,
		Verbose:   f.Verbose,
		LogJSON:   f.LogJSON,
	}
}
