package descriptor

import (
	"fmt"
	"strings"
)

// Resolution sources for a dependency version.
const (
	SourceExplicit = "explicit"
	SourceBOM      = "bom"
)

// ResolvedDependency is an active dependency paired with the version it
// will be linked at.
type ResolvedDependency struct {
	Dependency *Dependency `json:"dependency"`
	Version    string      `json:"version"`
	Source     string      `json:"source"`

	// BOM is the platform coordinate the version was inherited from, set
	// only when Source is SourceBOM.
	BOM *Coordinate `json:"bom,omitempty"`
}

// SigningConfigFor returns the signing configuration selected by the named
// build type.
func (d *Descriptor) SigningConfigFor(buildType string) (*SigningConfig, error) {
	bt, ok := d.BuildTypes[buildType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuildType, buildType)
	}
	if bt.SigningConfig == "" {
		return nil, fmt.Errorf("%w: build type %q selects no signing config", ErrMissingSigningConfig, buildType)
	}
	sc, ok := d.SigningConfigs[bt.SigningConfig]
	if !ok {
		return nil, fmt.Errorf("%w: build type %q references %q", ErrMissingSigningConfig, buildType, bt.SigningConfig)
	}
	return sc, nil
}

// ResolveDependencies pairs every enabled, non-platform dependency with its
// version. A dependency without an explicit version inherits it from the
// closest enabled BoM declared before it whose group covers the
// dependency's group.
func (d *Descriptor) ResolveDependencies() ([]*ResolvedDependency, error) {
	var boms []Coordinate
	var out []*ResolvedDependency

	for i, dep := range d.Dependencies {
		if !dep.Enabled {
			continue
		}
		if dep.Platform {
			boms = append(boms, dep.Coordinate)
			continue
		}
		if dep.Coordinate.Version != "" {
			out = append(out, &ResolvedDependency{Dependency: dep, Version: dep.Coordinate.Version, Source: SourceExplicit})
			continue
		}
		bom, ok := managingBOM(boms, dep.Coordinate.Group)
		if !ok {
			return nil, fmt.Errorf("%w: dependency #%d %s", ErrUnmanagedDependency, i, dep.Coordinate.Module())
		}
		out = append(out, &ResolvedDependency{Dependency: dep, Version: bom.Version, Source: SourceBOM, BOM: &bom})
	}
	return out, nil
}

// managingBOM returns the most recently declared BoM in boms that manages
// group. A BoM manages its own group and every group nested under it, so
// androidx.compose:compose-bom covers androidx.compose.ui.
func managingBOM(boms []Coordinate, group string) (Coordinate, bool) {
	for i := len(boms) - 1; i >= 0; i-- {
		g := boms[i].Group
		if group == g || strings.HasPrefix(group, g+".") {
			return boms[i], true
		}
	}
	return Coordinate{}, false
}
