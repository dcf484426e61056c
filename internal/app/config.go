package app

import (
	"errors"
	"fmt"
)

// Output formats accepted by Config.Emit.
const (
	EmitNone   = "none"
	EmitHCL    = "hcl"
	EmitGradle = "gradle"
	EmitJSON   = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptorPath     string // .hcl file or directory
	PubspecPath        string // optional, feeds flutter.* variables
	GoogleServicesPath string // optional google-services.json
	Emit               string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorPath == "" {
		return nil, errors.New("DescriptorPath is a required configuration field and cannot be empty")
	}
	if cfg.Emit == "" {
		cfg.Emit = EmitNone
	}
	switch cfg.Emit {
	case EmitNone, EmitHCL, EmitGradle, EmitJSON:
	default:
		return nil, fmt.Errorf("invalid emit format %q: must be one of %q, %q, %q, %q", cfg.Emit, EmitNone, EmitHCL, EmitGradle, EmitJSON)
	}
	return &cfg, nil
}
