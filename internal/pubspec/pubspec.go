// Package pubspec reads the version of a Flutter project from its
// pubspec.yaml, the source of an Android build's versionCode and versionName.
package pubspec

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults used by the Flutter tool when pubspec.yaml carries no version.
const (
	DefaultVersionName = "1.0.0"
	DefaultVersionCode = 1
)

// Version is the split form of a pubspec `version: <name>+<code>` entry.
type Version struct {
	Name string
	Code int
}

// Default returns the version Flutter assumes when none is declared.
func Default() Version {
	return Version{Name: DefaultVersionName, Code: DefaultVersionCode}
}

type document struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Load reads the version from the pubspec.yaml at path. A missing file
// yields Default().
func Load(path string) (Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Version{}, fmt.Errorf("failed to read pubspec %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes pubspec.yaml content and extracts its version.
func Parse(data []byte) (Version, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Version{}, fmt.Errorf("failed to decode pubspec: %w", err)
	}
	if doc.Version == "" {
		return Default(), nil
	}
	return ParseVersion(doc.Version)
}

// ParseVersion splits "1.2.3+4" into name "1.2.3" and code 4. Without a
// build number the code defaults to 1.
func ParseVersion(s string) (Version, error) {
	name, build, hasBuild := strings.Cut(strings.TrimSpace(s), "+")
	if name == "" {
		return Version{}, fmt.Errorf("invalid pubspec version %q: empty version name", s)
	}
	v := Version{Name: name, Code: DefaultVersionCode}
	if !hasBuild {
		return v, nil
	}
	code, err := strconv.Atoi(build)
	if err != nil || code <= 0 {
		return Version{}, fmt.Errorf("invalid pubspec version %q: build number must be a positive integer", s)
	}
	v.Code = code
	return v, nil
}
