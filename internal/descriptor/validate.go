package descriptor

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/vk/droidspec/internal/ctxlog"
)

// packageNameRegex matches reverse-domain identifiers such as
// com.example.ai_assistant_app. At least two segments are required.
var packageNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

// dottedVersionRegex matches numeric versions with at least two segments,
// such as 34.5.0, 2024.01.00 or 29.0.14206865.
var dottedVersionRegex = regexp.MustCompile(`^\d+(\.\d+)+$`)

// Validate performs the structural checks on a loaded descriptor. Every
// problem is collected; the returned error is a *ValidationError or nil.
// Choices that are legal but unsafe are logged as warnings.
func Validate(ctx context.Context, d *Descriptor) error {
	logger := ctxlog.FromContext(ctx)
	v := &validator{}

	v.identity(d.Identity)
	v.toolchain(d.Toolchain)
	v.signing(d)
	v.dependencies(d.Dependencies)

	if bt, ok := d.BuildTypes["release"]; ok && bt.SigningConfig == DebugSigningConfig {
		logger.Warn("Release build type is signed with the debug identity; artifacts cannot be published.", "build_type", bt.Name)
	}

	if len(v.issues) > 0 {
		logger.Debug("Descriptor validation found issues.", "count", len(v.issues))
		return &ValidationError{Issues: v.issues}
	}
	logger.Debug("Descriptor validation passed.")
	return nil
}

type validator struct {
	issues []*Issue
}

func (v *validator) add(kind error, format string, args ...any) {
	v.issues = append(v.issues, &Issue{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

func (v *validator) identity(id Identity) {
	if !packageNameRegex.MatchString(id.ApplicationID) {
		v.add(ErrInvalidApplicationID, "%q is not a reverse-domain identifier", id.ApplicationID)
	}
	if !packageNameRegex.MatchString(id.Namespace) {
		v.add(ErrInvalidNamespace, "%q is not a reverse-domain identifier", id.Namespace)
	}
	if id.VersionCode <= 0 {
		v.add(ErrInvalidVersion, "version_code must be positive, got %d", id.VersionCode)
	}
}

func (v *validator) toolchain(tc Toolchain) {
	if tc.MinSDK <= 0 || tc.TargetSDK <= 0 || tc.CompileSDK <= 0 {
		v.add(ErrSDKOrdering, "sdk levels must be positive (min=%d, target=%d, compile=%d)", tc.MinSDK, tc.TargetSDK, tc.CompileSDK)
	} else if tc.MinSDK > tc.TargetSDK || tc.TargetSDK > tc.CompileSDK {
		v.add(ErrSDKOrdering, "require min_sdk <= target_sdk <= compile_sdk, got %d <= %d <= %d", tc.MinSDK, tc.TargetSDK, tc.CompileSDK)
	}
	if tc.NDKVersion != "" && !isDottedVersion(tc.NDKVersion) {
		v.add(ErrInvalidVersion, "ndk_version %q is not a dotted numeric version", tc.NDKVersion)
	}
	if tc.JVMTarget != "" && tc.TargetCompatibility != "" && tc.JVMTarget != tc.TargetCompatibility.Number() {
		v.add(ErrJVMTargetMismatch, "jvm_target %q, target_compatibility %q", tc.JVMTarget, tc.TargetCompatibility)
	}
}

func (v *validator) signing(d *Descriptor) {
	names := make([]string, 0, len(d.BuildTypes))
	for name := range d.BuildTypes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := d.BuildTypes[name].SigningConfig
		if ref == "" {
			continue
		}
		if _, ok := d.SigningConfigs[ref]; !ok {
			v.add(ErrMissingSigningConfig, "build type %q references undeclared signing config %q", name, ref)
		}
	}
}

func (v *validator) dependencies(deps DependencySet) {
	var boms []Coordinate
	seen := make(map[string]int)

	for i, dep := range deps {
		if !dep.Enabled {
			continue
		}
		key := dep.Configuration + " " + dep.Coordinate.Module()
		if dep.Platform {
			key = "platform " + key
		}
		if first, ok := seen[key]; ok {
			v.add(ErrDuplicateDependency, "%s declared at #%d and #%d", key, first, i)
		} else {
			seen[key] = i
		}

		if dep.Platform {
			if !isDottedVersion(dep.Coordinate.Version) {
				v.add(ErrInvalidVersion, "bill-of-materials %s needs a dotted numeric version", dep.Coordinate)
			}
			boms = append(boms, dep.Coordinate)
			continue
		}
		if dep.Coordinate.Version != "" {
			continue
		}
		if _, ok := managingBOM(boms, dep.Coordinate.Group); !ok {
			v.add(ErrUnmanagedDependency, "#%d %s", i, dep.Coordinate.Module())
		}
	}
}

// isDottedVersion reports whether s looks like 34.5.0 or 29.0.14206865.
func isDottedVersion(s string) bool {
	return dottedVersionRegex.MatchString(s)
}
