package hcl

import "github.com/hashicorp/hcl/v2"

// findUniqueBlock searches blocks for the given type. It returns a
// diagnostic if more than one is found and nil if none is.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, duplicateBlockDiag(name, &found.DefRange, &block.DefRange))
			continue
		}
		found = block
	}
	return found, diags
}

func duplicateBlockDiag(name string, first, dup *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate \"" + name + "\" block",
		Detail:   "Only one \"" + name + "\" block is allowed; the first was defined at " + first.String() + ".",
		Subject:  dup,
	}
}

func duplicatePluginDiag(id string, first, dup *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate plugin \"" + id + "\"",
		Detail:   "Plugin \"" + id + "\" was already declared at " + first.String() + ".",
		Subject:  dup,
	}
}
