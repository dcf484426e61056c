package hcl

import "github.com/hashicorp/hcl/v2"

// rootSchema lists the top-level blocks a descriptor file may contain.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "plugin", LabelNames: []string{"id"}},
		{Type: "android"},
		{Type: "flutter"},
		{Type: "dependencies"},
	},
}

// Plugin represents a `plugin` block.
type Plugin struct {
	Apply *bool `hcl:"apply,optional"`
}

// Android represents the `android` block.
type Android struct {
	Namespace      string           `hcl:"namespace"`
	CompileSDK     int              `hcl:"compile_sdk"`
	NDKVersion     string           `hcl:"ndk_version,optional"`
	CompileOptions *CompileOptions  `hcl:"compile_options,block"`
	KotlinOptions  *KotlinOptions   `hcl:"kotlin_options,block"`
	DefaultConfig  DefaultConfig    `hcl:"default_config,block"`
	SigningConfigs []*SigningConfig `hcl:"signing_config,block"`
	BuildTypes     []*BuildType     `hcl:"build_type,block"`
}

// CompileOptions represents the `compile_options` block.
type CompileOptions struct {
	SourceCompatibility string `hcl:"source_compatibility,optional"`
	TargetCompatibility string `hcl:"target_compatibility,optional"`
}

// KotlinOptions represents the `kotlin_options` block.
type KotlinOptions struct {
	JVMTarget string `hcl:"jvm_target,optional"`
}

// DefaultConfig represents the `default_config` block. Version fields are
// optional; when omitted they come from the Flutter project version.
type DefaultConfig struct {
	ApplicationID string  `hcl:"application_id"`
	MinSDK        int     `hcl:"min_sdk"`
	TargetSDK     int     `hcl:"target_sdk"`
	VersionCode   *int    `hcl:"version_code,optional"`
	VersionName   *string `hcl:"version_name,optional"`
}

// SigningConfig represents a `signing_config` block.
type SigningConfig struct {
	Name          string `hcl:"name,label"`
	StoreFile     string `hcl:"store_file,optional"`
	StorePassword string `hcl:"store_password,optional"`
	KeyAlias      string `hcl:"key_alias,optional"`
	KeyPassword   string `hcl:"key_password,optional"`
}

// BuildType represents a `build_type` block.
type BuildType struct {
	Name          string `hcl:"name,label"`
	SigningConfig string `hcl:"signing_config,optional"`
	MinifyEnabled bool   `hcl:"minify_enabled,optional"`
	Debuggable    bool   `hcl:"debuggable,optional"`
}

// Flutter represents the `flutter` block.
type Flutter struct {
	Source string `hcl:"source"`
}

// Dependencies represents a `dependencies` block. Declaration order is kept.
type Dependencies struct {
	Items []*Dependency `hcl:"dependency,block"`
}

// Dependency represents a single `dependency` block.
type Dependency struct {
	Configuration string `hcl:"configuration,label"`
	Coordinate    string `hcl:"coordinate,label"`
	Platform      bool   `hcl:"platform,optional"`
	Enabled       *bool  `hcl:"enabled,optional"`
}
