// This file translates the HCL schema structs into the format-agnostic
// descriptor model.

package hcl

import (
	"context"
	"fmt"

	"github.com/vk/droidspec/internal/ctxlog"
	"github.com/vk/droidspec/internal/descriptor"
	"github.com/vk/droidspec/internal/pubspec"
)

func translate(ctx context.Context, c *fileContent, flutter pubspec.Version) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	a := c.android

	d := descriptor.New()
	d.Plugins = c.plugins

	d.Identity = descriptor.Identity{
		Namespace:     a.Namespace,
		ApplicationID: a.DefaultConfig.ApplicationID,
		VersionCode:   flutter.Code,
		VersionName:   flutter.Name,
	}
	if a.DefaultConfig.VersionCode != nil {
		d.Identity.VersionCode = *a.DefaultConfig.VersionCode
	}
	if a.DefaultConfig.VersionName != nil {
		d.Identity.VersionName = *a.DefaultConfig.VersionName
	}

	d.Toolchain = descriptor.Toolchain{
		CompileSDK: a.CompileSDK,
		MinSDK:     a.DefaultConfig.MinSDK,
		TargetSDK:  a.DefaultConfig.TargetSDK,
		NDKVersion: a.NDKVersion,
	}
	if a.CompileOptions != nil {
		d.Toolchain.SourceCompatibility = descriptor.ParseJavaVersion(a.CompileOptions.SourceCompatibility)
		d.Toolchain.TargetCompatibility = descriptor.ParseJavaVersion(a.CompileOptions.TargetCompatibility)
	}
	if a.KotlinOptions != nil {
		d.Toolchain.JVMTarget = a.KotlinOptions.JVMTarget
	}

	for _, sc := range a.SigningConfigs {
		if _, dup := d.SigningConfigs[sc.Name]; dup {
			return nil, fmt.Errorf("duplicate signing_config %q", sc.Name)
		}
		d.SigningConfigs[sc.Name] = &descriptor.SigningConfig{
			Name:          sc.Name,
			StoreFile:     sc.StoreFile,
			StorePassword: sc.StorePassword,
			KeyAlias:      sc.KeyAlias,
			KeyPassword:   sc.KeyPassword,
		}
	}
	if _, ok := d.SigningConfigs[descriptor.DebugSigningConfig]; !ok {
		logger.Debug("No debug signing config declared, using the default debug keystore.")
		d.SigningConfigs[descriptor.DebugSigningConfig] = descriptor.DefaultDebugSigningConfig()
	}

	for _, bt := range a.BuildTypes {
		if _, dup := d.BuildTypes[bt.Name]; dup {
			return nil, fmt.Errorf("duplicate build_type %q", bt.Name)
		}
		d.BuildTypes[bt.Name] = &descriptor.BuildType{
			Name:          bt.Name,
			SigningConfig: bt.SigningConfig,
			MinifyEnabled: bt.MinifyEnabled,
			Debuggable:    bt.Debuggable,
		}
	}

	if c.flutter != nil {
		d.Flutter = &descriptor.Flutter{Source: c.flutter.Source}
	}

	for i, dep := range c.dependencies {
		coord, err := descriptor.ParseCoordinate(dep.Coordinate)
		if err != nil {
			return nil, fmt.Errorf("dependency #%d: %w", i, err)
		}
		enabled := true
		if dep.Enabled != nil {
			enabled = *dep.Enabled
		}
		d.Dependencies = append(d.Dependencies, &descriptor.Dependency{
			Configuration: dep.Configuration,
			Coordinate:    coord,
			Platform:      dep.Platform,
			Enabled:       enabled,
		})
	}

	return d, nil
}
