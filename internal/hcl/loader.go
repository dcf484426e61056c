package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/droidspec/internal/ctxlog"
	"github.com/vk/droidspec/internal/descriptor"
	"github.com/vk/droidspec/internal/fsutil"
	"github.com/vk/droidspec/internal/pubspec"
)

// ErrNoDescriptor is returned when none of the given paths hold a .hcl file.
var ErrNoDescriptor = errors.New("no .hcl descriptor files found")

// Loader parses HCL descriptor files into a descriptor.Descriptor.
type Loader struct {
	flutter pubspec.Version
}

// NewLoader creates a loader whose `flutter.*` variables carry the given
// project version.
func NewLoader(flutter pubspec.Version) *Loader {
	return &Loader{flutter: flutter}
}

// fileContent holds the decoded blocks of one parsed file.
type fileContent struct {
	plugins      []*descriptor.Plugin
	pluginRanges map[string]*hcl.Range
	android      *Android
	androidRange *hcl.Range
	flutter      *Flutter
	flutterRange *hcl.Range
	dependencies []*Dependency
}

// Load reads every .hcl file under the given paths, merges them in path
// order and translates the result. Exactly one `android` block must exist
// across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoDescriptor, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var parsed []*hcl.File
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, hclFile)
	}
	return l.decode(ctx, parsed)
}

// LoadBytes parses a single in-memory descriptor. filename is only used in
// diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (*descriptor.Descriptor, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, []*hcl.File{hclFile})
}

func (l *Loader) decode(ctx context.Context, files []*hcl.File) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	evalCtx, err := newEvalContext(l.flutter)
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluation context: %w", err)
	}

	merged := &fileContent{}
	var diags hcl.Diagnostics
	for _, f := range files {
		content, fileDiags := decodeFile(f, evalCtx)
		diags = append(diags, fileDiags...)
		if fileDiags.HasErrors() {
			continue
		}
		diags = append(diags, merged.merge(content)...)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode descriptor: %w", diags)
	}
	if merged.android == nil {
		return nil, errors.New("failed to decode descriptor: missing required \"android\" block")
	}

	d, err := translate(ctx, merged, l.flutter)
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"plugins", len(d.Plugins),
		"signing_configs", len(d.SigningConfigs),
		"build_types", len(d.BuildTypes),
		"dependencies", len(d.Dependencies),
	)
	return d, nil
}

// decodeFile decodes the top-level blocks of a single file.
func decodeFile(f *hcl.File, evalCtx *hcl.EvalContext) (*fileContent, hcl.Diagnostics) {
	content, diags := f.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	out := &fileContent{pluginRanges: make(map[string]*hcl.Range)}

	androidBlock, moreDiags := findUniqueBlock(content.Blocks, "android")
	diags = append(diags, moreDiags...)
	if androidBlock != nil {
		var a Android
		diags = append(diags, gohcl.DecodeBody(androidBlock.Body, evalCtx, &a)...)
		out.android = &a
		out.androidRange = androidBlock.DefRange.Ptr()
	}

	flutterBlock, moreDiags := findUniqueBlock(content.Blocks, "flutter")
	diags = append(diags, moreDiags...)
	if flutterBlock != nil {
		var fl Flutter
		diags = append(diags, gohcl.DecodeBody(flutterBlock.Body, evalCtx, &fl)...)
		out.flutter = &fl
		out.flutterRange = flutterBlock.DefRange.Ptr()
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "plugin":
			var p Plugin
			diags = append(diags, gohcl.DecodeBody(block.Body, evalCtx, &p)...)
			apply := true
			if p.Apply != nil {
				apply = *p.Apply
			}
			id := block.Labels[0]
			if first, dup := out.pluginRanges[id]; dup {
				diags = append(diags, duplicatePluginDiag(id, first, block.DefRange.Ptr()))
				continue
			}
			out.pluginRanges[id] = block.DefRange.Ptr()
			out.plugins = append(out.plugins, &descriptor.Plugin{ID: id, Apply: apply})
		case "dependencies":
			var deps Dependencies
			diags = append(diags, gohcl.DecodeBody(block.Body, evalCtx, &deps)...)
			out.dependencies = append(out.dependencies, deps.Items...)
		}
	}
	return out, diags
}

// merge folds a later file's content into c.
func (c *fileContent) merge(o *fileContent) hcl.Diagnostics {
	var diags hcl.Diagnostics
	if o.android != nil {
		if c.android != nil {
			diags = append(diags, duplicateBlockDiag("android", c.androidRange, o.androidRange))
		} else {
			c.android, c.androidRange = o.android, o.androidRange
		}
	}
	if o.flutter != nil {
		if c.flutter != nil {
			diags = append(diags, duplicateBlockDiag("flutter", c.flutterRange, o.flutterRange))
		} else {
			c.flutter, c.flutterRange = o.flutter, o.flutterRange
		}
	}
	if c.pluginRanges == nil {
		c.pluginRanges = make(map[string]*hcl.Range)
	}
	for _, p := range o.plugins {
		if first, dup := c.pluginRanges[p.ID]; dup {
			diags = append(diags, duplicatePluginDiag(p.ID, first, o.pluginRanges[p.ID]))
			continue
		}
		c.pluginRanges[p.ID] = o.pluginRanges[p.ID]
		c.plugins = append(c.plugins, p)
	}
	c.dependencies = append(c.dependencies, o.dependencies...)
	return diags
}
