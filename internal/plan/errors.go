package plan

import "fmt"

// NameExtractionError means the input has no trailing "name.ext" component.
type NameExtractionError struct {
	Input string
}

func (e *NameExtractionError) Error() string {
	return fmt.Sprintf("cannot derive a component name from %q: expected a file name with an extension", e.Input)
}

// MissingOutputError means no output directory was configured.
type MissingOutputError struct {
	Input string
}

func (e *MissingOutputError) Error() string {
	return fmt.Sprintf("no output directory set for %q: pass --output", e.Input)
}
