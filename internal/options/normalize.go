package options

import (
	"github.com/spf13/pflag"
)

// Binding holds the raw flag values pflag writes into while parsing.
type Binding struct {
	fs  *pflag.FlagSet
	raw Config
}

// Bind registers every table flag on fs with its built-in default.
func Bind(fs *pflag.FlagSet) *Binding {
	b := &Binding{fs: fs}
	def := Defaults()
	for _, f := range Table {
		switch {
		case f.str != nil:
			fs.StringVarP(f.str(&b.raw), f.Name, f.Alias, *f.str(&def), f.Usage)
		case f.boolean != nil:
			fs.BoolVarP(f.boolean(&b.raw), f.Name, f.Alias, *f.boolean(&def), f.Usage)
		case f.float != nil:
			fs.Float64VarP(f.float(&b.raw), f.Name, f.Alias, *f.float(&def), f.Usage)
		}
	}
	return b
}

// Normalize layers the flags the user actually set over base and picks the
// first positional argument as the input file. base is usually Defaults(),
// or a preset loaded on top of it.
func (b *Binding) Normalize(args []string, base Config) (Config, string, error) {
	if len(args) == 0 {
		return Config{}, "", &UsageError{Reason: "no input file given"}
	}
	cfg := base
	for _, f := range Table {
		if b.fs.Changed(f.Name) {
			f.copyTo(&cfg, &b.raw)
		}
	}
	return cfg, args[0], nil
}
