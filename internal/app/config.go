package app

import "fmt"

// Report names accepted by the --show flag.
const (
	ShowTree       = "tree"
	ShowSignatures = "signatures"
	ShowLocals     = "locals"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Show string // report to render: tree, signatures, or locals

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Show == "" {
		cfg.Show = ShowTree
	}
	switch cfg.Show {
	case ShowTree, ShowSignatures, ShowLocals:
	default:
		return nil, fmt.Errorf("unknown report %q: must be %q, %q, or %q",
			cfg.Show, ShowTree, ShowSignatures, ShowLocals)
	}

	return &cfg, nil
}
