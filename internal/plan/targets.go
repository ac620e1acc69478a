package plan

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nameExtPattern matches a file name that ends in a single dot-extension.
// Inner dots are allowed between non-empty segments; only the last segment
// is the extension.
var nameExtPattern = regexp.MustCompile(`[-\w]+(?:\.[-\w]+)*\.\w+$`)

type Options struct {
	OutputDir string
	Types     bool
}

// BuildTarget derives the generated component path for input, e.g.
// "models/duck.glb" with OutputDir "dist" becomes "dist/Duck.jsx".
func BuildTarget(input string, opts Options) (string, error) {
	nameExt, err := ExtractNameExt(input)
	if err != nil {
		return "", err
	}
	if opts.OutputDir == "" {
		return "", &MissingOutputError{Input: input}
	}
	return filepath.Join(opts.OutputDir, ComponentFileName(StripExt(nameExt), opts.Types)), nil
}

// ExtractNameExt returns the trailing "name.ext" component of input.
func ExtractNameExt(input string) (string, error) {
	last := input[strings.LastIndexAny(input, `/\`)+1:]
	nameExt := nameExtPattern.FindString(last)
	if nameExt == "" {
		return "", &NameExtractionError{Input: input}
	}
	return nameExt, nil
}

// StripExt drops the last dot-delimited segment: "my.model.glb" -> "my.model".
func StripExt(nameExt string) string {
	parts := strings.Split(nameExt, ".")
	if len(parts) < 2 {
		return nameExt
	}
	return strings.Join(parts[:len(parts)-1], ".")
}

// Capitalize upper-cases the first character and leaves the rest alone.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func ComponentFileName(base string, types bool) string {
	ext := ".jsx"
	if types {
		ext = ".tsx"
	}
	return Capitalize(base) + ext
}
