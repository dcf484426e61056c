package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/droidspec/internal/ctxlog"
	"github.com/vk/droidspec/internal/descriptor"
	"github.com/vk/droidspec/internal/hcl"
	"github.com/vk/droidspec/internal/pubspec"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Emitted documents go
// to outW; logs go to logW through the App's own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Load reads the Flutter project version and the descriptor files.
func (a *App) Load(ctx context.Context) (*descriptor.Descriptor, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	version := pubspec.Default()
	if a.config.PubspecPath != "" {
		v, err := pubspec.Load(a.config.PubspecPath)
		if err != nil {
			return nil, err
		}
		version = v
		a.logger.Debug("Flutter project version loaded.", "version_name", v.Name, "version_code", v.Code)
	}

	d, err := hcl.NewLoader(version).Load(ctx, a.config.DescriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor: %w", err)
	}
	a.logger.Info("Descriptor loaded.", "path", a.config.DescriptorPath, "application_id", d.Identity.ApplicationID)
	return d, nil
}
