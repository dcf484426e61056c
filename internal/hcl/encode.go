package hcl

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/droidspec/internal/descriptor"
	"github.com/zclconf/go-cty/cty"
)

// Encode writes d as a single canonical HCL document. Loading the result
// yields a descriptor equal to d. The implicit debug signing config is
// omitted unless it differs from the default.
func Encode(d *descriptor.Descriptor) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for _, p := range d.Plugins {
		body := root.AppendNewBlock("plugin", []string{p.ID}).Body()
		if !p.Apply {
			body.SetAttributeValue("apply", cty.False)
		}
	}
	if len(d.Plugins) > 0 {
		root.AppendNewline()
	}

	encodeAndroid(root.AppendNewBlock("android", nil).Body(), d)

	if d.Flutter != nil {
		root.AppendNewline()
		root.AppendNewBlock("flutter", nil).Body().SetAttributeValue("source", cty.StringVal(d.Flutter.Source))
	}

	if len(d.Dependencies) > 0 {
		root.AppendNewline()
		deps := root.AppendNewBlock("dependencies", nil).Body()
		for _, dep := range d.Dependencies {
			body := deps.AppendNewBlock("dependency", []string{dep.Configuration, dep.Coordinate.String()}).Body()
			if dep.Platform {
				body.SetAttributeValue("platform", cty.True)
			}
			if !dep.Enabled {
				body.SetAttributeValue("enabled", cty.False)
			}
		}
	}

	return hclwrite.Format(f.Bytes())
}

func encodeAndroid(body *hclwrite.Body, d *descriptor.Descriptor) {
	tc := d.Toolchain
	body.SetAttributeValue("namespace", cty.StringVal(d.Identity.Namespace))
	body.SetAttributeValue("compile_sdk", cty.NumberIntVal(int64(tc.CompileSDK)))
	if tc.NDKVersion != "" {
		body.SetAttributeValue("ndk_version", cty.StringVal(tc.NDKVersion))
	}

	if tc.SourceCompatibility != "" || tc.TargetCompatibility != "" {
		body.AppendNewline()
		opts := body.AppendNewBlock("compile_options", nil).Body()
		if tc.SourceCompatibility != "" {
			opts.SetAttributeValue("source_compatibility", cty.StringVal(string(tc.SourceCompatibility)))
		}
		if tc.TargetCompatibility != "" {
			opts.SetAttributeValue("target_compatibility", cty.StringVal(string(tc.TargetCompatibility)))
		}
	}
	if tc.JVMTarget != "" {
		body.AppendNewline()
		body.AppendNewBlock("kotlin_options", nil).Body().SetAttributeValue("jvm_target", cty.StringVal(tc.JVMTarget))
	}

	body.AppendNewline()
	dc := body.AppendNewBlock("default_config", nil).Body()
	dc.SetAttributeValue("application_id", cty.StringVal(d.Identity.ApplicationID))
	dc.SetAttributeValue("min_sdk", cty.NumberIntVal(int64(tc.MinSDK)))
	dc.SetAttributeValue("target_sdk", cty.NumberIntVal(int64(tc.TargetSDK)))
	dc.SetAttributeValue("version_code", cty.NumberIntVal(int64(d.Identity.VersionCode)))
	dc.SetAttributeValue("version_name", cty.StringVal(d.Identity.VersionName))

	for _, name := range sortedKeys(d.SigningConfigs) {
		sc := d.SigningConfigs[name]
		if name == descriptor.DebugSigningConfig && *sc == *descriptor.DefaultDebugSigningConfig() {
			continue
		}
		body.AppendNewline()
		b := body.AppendNewBlock("signing_config", []string{name}).Body()
		setOptionalString(b, "store_file", sc.StoreFile)
		setOptionalString(b, "store_password", sc.StorePassword)
		setOptionalString(b, "key_alias", sc.KeyAlias)
		setOptionalString(b, "key_password", sc.KeyPassword)
	}

	for _, name := range sortedKeys(d.BuildTypes) {
		bt := d.BuildTypes[name]
		body.AppendNewline()
		b := body.AppendNewBlock("build_type", []string{name}).Body()
		if bt.SigningConfig != "" {
			b.SetAttributeValue("signing_config", cty.StringVal(bt.SigningConfig))
		}
		if bt.MinifyEnabled {
			b.SetAttributeValue("minify_enabled", cty.True)
		}
		if bt.Debuggable {
			b.SetAttributeValue("debuggable", cty.True)
		}
	}
}

func setOptionalString(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
