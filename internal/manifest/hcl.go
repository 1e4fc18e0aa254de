// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var manifestSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "command", LabelNames: []string{"name"}},
	},
}

var commandSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "path"},
		{Name: "help"},
	},
}

// parseHCL decodes an HCL manifest. Attribute expressions are evaluated with
// the app object in scope, so help text may interpolate "${app.name}".
// Decode errors are collected per block so one bad block does not mask the rest.
func parseHCL(filename string, data []byte, appName string) (*Manifest, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Join(ErrParse, diags)
	}

	content, diags := file.Body.Content(manifestSchema)
	if diags.HasErrors() {
		return nil, errors.Join(ErrParse, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"app": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(appName),
			}),
		},
	}

	var merr *multierror.Error

	m := &Manifest{}

	for _, block := range content.Blocks {
		decl := Decl{Name: block.Labels[0]}

		body, diags := block.Body.Content(commandSchema)
		if diags.HasErrors() {
			merr = multierror.Append(merr, diags)

			continue
		}

		ok := true

		for name, target := range map[string]*string{
			"path": &decl.Path,
			"help": &decl.Help,
		} {
			attr, exists := body.Attributes[name]
			if !exists {
				continue
			}

			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				merr = multierror.Append(merr, diags)

				ok = false

				continue
			}

			if val.Type() != cty.String {
				merr = multierror.Append(merr,
					fmt.Errorf("command %q: attribute %q must be a string", decl.Name, name))

				ok = false

				continue
			}

			*target = val.AsString()
		}

		if ok {
			m.Commands = append(m.Commands, decl)
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	return m, nil
}
