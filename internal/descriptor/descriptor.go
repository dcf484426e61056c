package descriptor

import (
	"fmt"
	"strings"
)

// DebugSigningConfig is the name of the signing configuration the Android
// plugin always provides, whether or not the descriptor declares it.
const DebugSigningConfig = "debug"

// Descriptor is the unified representation of a single application build
// descriptor.
type Descriptor struct {
	Plugins        []*Plugin                 `json:"plugins"`
	Identity       Identity                  `json:"identity"`
	Toolchain      Toolchain                 `json:"toolchain"`
	SigningConfigs map[string]*SigningConfig `json:"signing_configs"`
	BuildTypes     map[string]*BuildType     `json:"build_types"`
	Flutter        *Flutter                  `json:"flutter,omitempty"`
	Dependencies   DependencySet             `json:"dependencies"`
}

// New returns an empty descriptor with its maps initialized.
func New() *Descriptor {
	return &Descriptor{
		SigningConfigs: make(map[string]*SigningConfig),
		BuildTypes:     make(map[string]*BuildType),
	}
}

// Plugin is a single entry of the `plugins` block.
type Plugin struct {
	ID    string `json:"id"`
	Apply bool   `json:"apply"`
}

// Identity stamps the output artifact's package name and version metadata.
type Identity struct {
	Namespace     string `json:"namespace"`
	ApplicationID string `json:"application_id"`
	VersionCode   int    `json:"version_code"`
	VersionName   string `json:"version_name"`
}

// Toolchain selects the platform API surface and language level the compiled
// artifact targets.
type Toolchain struct {
	CompileSDK          int         `json:"compile_sdk"`
	MinSDK              int         `json:"min_sdk"`
	TargetSDK           int         `json:"target_sdk"`
	NDKVersion          string      `json:"ndk_version,omitempty"`
	SourceCompatibility JavaVersion `json:"source_compatibility,omitempty"`
	TargetCompatibility JavaVersion `json:"target_compatibility,omitempty"`
	JVMTarget           string      `json:"jvm_target,omitempty"`
}

// JavaVersion is a Gradle JavaVersion constant name, e.g. "VERSION_11" or
// "VERSION_1_8".
type JavaVersion string

// Number returns the bare language level, e.g. "11" or "1.8". Values that
// are already bare numbers are returned unchanged.
func (v JavaVersion) Number() string {
	s := strings.TrimPrefix(string(v), "VERSION_")
	return strings.ReplaceAll(s, "_", ".")
}

// ParseJavaVersion accepts either a constant name ("VERSION_11") or a bare
// level ("11", "1.8") and returns the constant form.
func ParseJavaVersion(s string) JavaVersion {
	if s == "" || strings.HasPrefix(s, "VERSION_") {
		return JavaVersion(s)
	}
	return JavaVersion("VERSION_" + strings.ReplaceAll(s, ".", "_"))
}

// SigningConfig is a named credential bundle used to sign an artifact.
type SigningConfig struct {
	Name          string `json:"name"`
	StoreFile     string `json:"store_file,omitempty"`
	StorePassword string `json:"-"`
	KeyAlias      string `json:"key_alias,omitempty"`
	KeyPassword   string `json:"-"`
}

// DefaultDebugSigningConfig mirrors the debug keystore the Android plugin
// creates on first build.
func DefaultDebugSigningConfig() *SigningConfig {
	return &SigningConfig{
		Name:          DebugSigningConfig,
		StoreFile:     "~/.android/debug.keystore",
		StorePassword: "android",
		KeyAlias:      "androiddebugkey",
		KeyPassword:   "android",
	}
}

// BuildType is a build variant such as "debug" or "release".
type BuildType struct {
	Name          string `json:"name"`
	SigningConfig string `json:"signing_config,omitempty"`
	MinifyEnabled bool   `json:"minify_enabled"`
	Debuggable    bool   `json:"debuggable"`
}

// Flutter holds the settings of the `flutter` block.
type Flutter struct {
	Source string `json:"source"`
}

// Coordinate identifies an external module as group:artifact[:version].
type Coordinate struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version,omitempty"`
}

// ParseCoordinate parses a "group:artifact" or "group:artifact:version" string.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: expected group:artifact[:version]", s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Coordinate{}, fmt.Errorf("invalid coordinate %q: empty segment", s)
		}
	}
	c := Coordinate{Group: parts[0], Artifact: parts[1]}
	if len(parts) == 3 {
		c.Version = parts[2]
	}
	return c, nil
}

// Module returns the versionless "group:artifact" form.
func (c Coordinate) Module() string {
	return c.Group + ":" + c.Artifact
}

func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Module()
	}
	return c.Module() + ":" + c.Version
}

// Dependency is a single declaration of the dependency set.
type Dependency struct {
	// Configuration is the Gradle configuration, e.g. "implementation".
	Configuration string     `json:"configuration"`
	Coordinate    Coordinate `json:"coordinate"`

	// Platform marks a bill-of-materials import.
	Platform bool `json:"platform"`

	// Enabled is false for declarations kept in the file but switched off.
	Enabled bool `json:"enabled"`
}

// DependencySet is an ordered list of dependency declarations. Order matters:
// a BoM must precede the dependencies that inherit its version.
type DependencySet []*Dependency

// Active returns the enabled declarations in order.
func (s DependencySet) Active() DependencySet {
	var out DependencySet
	for _, d := range s {
		if d.Enabled {
			out = append(out, d)
		}
	}
	return out
}
