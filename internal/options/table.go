package options

// Flag is one row of the fixed dispatch table. Exactly one of the accessors
// is set and selects the flag kind.
type Flag struct {
	Name  string
	Alias string
	Usage string

	str     func(*Config) *string
	boolean func(*Config) *bool
	float   func(*Config) *float64
}

// Table lists every option forwarded to the engine, in help order.
var Table = []Flag{
	{Name: "output", Alias: "o", Usage: "Output directory for the generated component", str: func(c *Config) *string { return &c.Output }},
	{Name: "types", Alias: "t", Usage: "Add Typescript definitions (.tsx)", boolean: func(c *Config) *bool { return &c.Types }},
	{Name: "keepnames", Alias: "k", Usage: "Keep original names", boolean: func(c *Config) *bool { return &c.KeepNames }},
	{Name: "keepgroups", Alias: "K", Usage: "Keep (empty) groups, disable pruning", boolean: func(c *Config) *bool { return &c.KeepGroups }},
	{Name: "shadows", Alias: "s", Usage: "Let meshes cast and receive shadows", boolean: func(c *Config) *bool { return &c.Shadows }},
	{Name: "printwidth", Alias: "w", Usage: "Prettier printWidth", float: func(c *Config) *float64 { return &c.PrintWidth }},
	{Name: "meta", Alias: "m", Usage: "Include metadata (as userData)", boolean: func(c *Config) *bool { return &c.Meta }},
	{Name: "precision", Alias: "p", Usage: "Number of fractional digits", float: func(c *Config) *float64 { return &c.Precision }},
	{Name: "draco", Alias: "d", Usage: "Draco binary path", str: func(c *Config) *string { return &c.Draco }},
	{Name: "root", Alias: "r", Usage: "Sets directory from which .gltf file is served", str: func(c *Config) *string { return &c.Root }},
	{Name: "instance", Alias: "i", Usage: "Instance re-occuring geometry", boolean: func(c *Config) *bool { return &c.Instance }},
	{Name: "instanceall", Alias: "I", Usage: "Instance every geometry (for cheaper re-use)", boolean: func(c *Config) *bool { return &c.InstanceAll }},
	{Name: "transform", Alias: "T", Usage: "Transform the asset for the web (draco, prune, resize)", boolean: func(c *Config) *bool { return &c.Transform }},
	{Name: "resolution", Alias: "R", Usage: "Transform resolution for texture resizing", float: func(c *Config) *float64 { return &c.Resolution }},
	{Name: "simplify", Alias: "S", Usage: "Transform simplification (experimental!)", boolean: func(c *Config) *bool { return &c.Simplify }},
	{Name: "weld", Usage: "Weld tolerance", float: func(c *Config) *float64 { return &c.Weld }},
	{Name: "ratio", Usage: "Simplifier ratio", float: func(c *Config) *float64 { return &c.Ratio }},
	{Name: "error", Usage: "Simplifier error threshold", float: func(c *Config) *float64 { return &c.Error }},
	{Name: "debug", Alias: "D", Usage: "Debug output", boolean: func(c *Config) *bool { return &c.Debug }},
}

// Lookup returns the table row for a long flag name.
func Lookup(name string) (Flag, bool) {
	for _, f := range Table {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// Target returns a pointer to the Config field the flag controls: a *string,
// *bool or *float64.
func (f Flag) Target(c *Config) any {
	switch {
	case f.str != nil:
		return f.str(c)
	case f.boolean != nil:
		return f.boolean(c)
	case f.float != nil:
		return f.float(c)
	}
	return nil
}

func (f Flag) copyTo(dst, src *Config) {
	switch {
	case f.str != nil:
		*f.str(dst) = *f.str(src)
	case f.boolean != nil:
		*f.boolean(dst) = *f.boolean(src)
	case f.float != nil:
		*f.float(dst) = *f.float(src)
	}
}
