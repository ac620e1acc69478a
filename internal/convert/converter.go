package convert

import (
	"context"

	"gltfjsx/internal/job"
)

// LogFunc receives diagnostic lines from the engine while it runs.
type LogFunc func(message string)

// Engine turns one scene file into a generated component. Implementations
// write the output themselves; the caller does not inspect it.
type Engine interface {
	Convert(ctx context.Context, req job.Request, showLog LogFunc) (job.Result, error)
}

// EngineError wraps any failure raised while the engine runs.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	if e == nil || e.Err == nil {
		return "conversion engine failed"
	}
	return "conversion engine failed: " + e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
