package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/droidspec/internal/ctxlog"
	"github.com/vk/droidspec/internal/descriptor"
	"github.com/vk/droidspec/internal/googleservices"
	"github.com/vk/droidspec/internal/gradle"
	"github.com/vk/droidspec/internal/hcl"
)

// report is the document written by the json emitter.
type report struct {
	Descriptor   *descriptor.Descriptor           `json:"descriptor"`
	Dependencies []*descriptor.ResolvedDependency `json:"resolved_dependencies"`
}

// Run loads, validates and checks the descriptor, then writes it in the
// configured output format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	d, err := a.Load(ctx)
	if err != nil {
		return err
	}

	if err := descriptor.Validate(ctx, d); err != nil {
		return err
	}

	resolved, err := d.ResolveDependencies()
	if err != nil {
		return err
	}
	for _, r := range resolved {
		a.logger.Debug("Dependency resolved.",
			"module", r.Dependency.Coordinate.Module(),
			"version", r.Version,
			"source", r.Source,
		)
	}
	a.logger.Info("Descriptor is valid.",
		"min_sdk", d.Toolchain.MinSDK,
		"target_sdk", d.Toolchain.TargetSDK,
		"compile_sdk", d.Toolchain.CompileSDK,
		"linked_dependencies", len(resolved),
	)

	if err := a.checkGoogleServices(d); err != nil {
		return err
	}

	if err := a.emit(d, resolved); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) checkGoogleServices(d *descriptor.Descriptor) error {
	applied := false
	for _, p := range d.Plugins {
		if p.ID == googleservices.PluginID && p.Apply {
			applied = true
			break
		}
	}

	path := a.config.GoogleServicesPath
	switch {
	case path == "" && applied:
		a.logger.Debug("Google services plugin applied but no google-services.json given, skipping check.")
		return nil
	case path == "":
		return nil
	case !applied:
		a.logger.Warn("google-services.json given but the plugin is not applied, skipping check.", "plugin", googleservices.PluginID)
		return nil
	}

	cfg, err := googleservices.Load(path)
	if err != nil {
		return err
	}
	client, err := cfg.Check(d.Identity.ApplicationID)
	if err != nil {
		return err
	}
	a.logger.Info("Firebase client found.", "project_id", cfg.ProjectInfo.ProjectID, "app_id", client.ClientInfo.MobileSDKAppID)
	return nil
}

func (a *App) emit(d *descriptor.Descriptor, resolved []*descriptor.ResolvedDependency) error {
	switch a.config.Emit {
	case EmitHCL:
		_, err := a.outW.Write(hcl.Encode(d))
		return err
	case EmitGradle:
		return gradle.Render(a.outW, d)
	case EmitJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report{Descriptor: d, Dependencies: resolved}); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	default:
		return nil
	}
}
