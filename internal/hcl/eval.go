package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/droidspec/internal/pubspec"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// flutterVars is the shape of the `flutter` variable exposed to descriptor
// expressions.
type flutterVars struct {
	VersionCode int    `cty:"version_code"`
	VersionName string `cty:"version_name"`
}

// newEvalContext builds the evaluation context descriptor expressions are
// evaluated in.
func newEvalContext(v pubspec.Version) (*hcl.EvalContext, error) {
	vars := flutterVars{VersionCode: v.Code, VersionName: v.Name}
	ty, err := gocty.ImpliedType(vars)
	if err != nil {
		return nil, err
	}
	val, err := gocty.ToCtyValue(vars, ty)
	if err != nil {
		return nil, err
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"flutter": val,
		},
	}, nil
}
