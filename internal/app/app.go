package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/symtab/internal/ctxlog"
	"github.com/vk/symtab/symbol"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Log output goes
// to errW so reports on outW stay machine-readable.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}
}

// Run builds the showcase symbol model and renders the configured report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	unit, err := buildShowcaseUnit()
	if err != nil {
		return fmt.Errorf("failed to build showcase unit: %w", err)
	}
	a.logger.Debug("Showcase unit assembled.",
		"imports", unit.Imports().Len(),
		"declarations", unit.Declarations().Len(),
	)

	table, err := buildShowcaseLocals(ctx)
	if err != nil {
		return fmt.Errorf("failed to introspect live objects: %w", err)
	}
	a.logger.Debug("Live objects registered.", "count", table.Len())

	switch a.config.Show {
	case ShowTree:
		err = renderTree(a.outW, unit)
	case ShowSignatures:
		err = renderSignatures(a.outW, unit)
	case ShowLocals:
		err = renderLocals(a.outW, table)
	default:
		err = fmt.Errorf("unknown report %q", a.config.Show)
	}
	if err != nil {
		return fmt.Errorf("failed to render report %q: %w", a.config.Show, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Unit rebuilds the showcase compilation unit. This is primarily for testing.
func (a *App) Unit() (*symbol.Module, error) {
	return buildShowcaseUnit()
}
