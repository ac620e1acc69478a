// Package preset loads project-level option defaults from an HCL file.
//
// A preset is a flat list of attributes named like the command-line options:
//
//	output    = "src/components"
//	types     = true
//	precision = 3
//
// Values from a preset replace the built-in defaults; flags given on the
// command line still win over the preset.
package preset

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/gocty"

	"gltfjsx/internal/options"
)

// Load parses path and applies its attributes on top of base.
func Load(path string, base options.Config) (options.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse preset %s: %w", path, diags)
	}
	return apply(file.Body, base)
}

// Parse is Load for in-memory sources; filename is only used in diagnostics.
func Parse(src []byte, filename string, base options.Config) (options.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse preset %s: %w", filename, diags)
	}
	return apply(file.Body, base)
}

func apply(body hcl.Body, base options.Config) (options.Config, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to read preset attributes: %w", diags)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := base
	for _, name := range names {
		attr := attrs[name]
		flag, ok := options.Lookup(name)
		if !ok {
			return base, fmt.Errorf("%s: unknown preset option %q", attr.NameRange, name)
		}
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return base, fmt.Errorf("failed to evaluate preset option %q: %w", name, valDiags)
		}
		if val.IsNull() {
			continue
		}
		if err := gocty.FromCtyValue(val, flag.Target(&cfg)); err != nil {
			return base, fmt.Errorf("%s: invalid value for preset option %q: %w", attr.Expr.Range(), name, err)
		}
	}
	return cfg, nil
}
