// Package gradle renders a descriptor as the build.gradle.kts script the
// Android Gradle plugin consumes.
package gradle

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/vk/droidspec/internal/descriptor"
)

//go:embed build.gradle.kts.tmpl
var scriptTemplate string

var tmpl = template.Must(template.New("build.gradle.kts").Funcs(template.FuncMap{
	"quote":      kotlinString,
	"dependency": dependencyLine,
}).Parse(scriptTemplate))

type scriptData struct {
	*descriptor.Descriptor

	// SigningConfigs excludes the implicit debug keystore, which Gradle
	// already provides.
	SigningConfigs []*descriptor.SigningConfig
	BuildTypes     []*descriptor.BuildType
}

// Render writes d to w as a Kotlin DSL build script.
func Render(w io.Writer, d *descriptor.Descriptor) error {
	data := scriptData{Descriptor: d}

	names := make([]string, 0, len(d.SigningConfigs))
	for name := range d.SigningConfigs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sc := d.SigningConfigs[name]
		if name == descriptor.DebugSigningConfig && *sc == *descriptor.DefaultDebugSigningConfig() {
			continue
		}
		data.SigningConfigs = append(data.SigningConfigs, sc)
	}

	names = names[:0]
	for name := range d.BuildTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		data.BuildTypes = append(data.BuildTypes, d.BuildTypes[name])
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render build script: %w", err)
	}
	return nil
}

// dependencyLine renders one declaration, commenting out disabled entries.
func dependencyLine(dep *descriptor.Dependency) string {
	notation := kotlinString(dep.Coordinate.String())
	if dep.Platform {
		notation = "platform(" + notation + ")"
	}
	line := fmt.Sprintf("%s(%s)", dep.Configuration, notation)
	if !dep.Enabled {
		return "// " + line
	}
	return line
}

// kotlinString renders s as a double-quoted Kotlin string literal. `$` is
// escaped so it never starts a string template.
func kotlinString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
