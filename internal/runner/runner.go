package runner

import (
	"context"

	"gltfjsx/internal/convert"
	"gltfjsx/internal/job"
)

// Run starts the engine call as its own task and waits for it. The call is
// made exactly once; failures are returned as-is, never retried.
func Run(ctx context.Context, req job.Request, c convert.Engine, showLog convert.LogFunc) Outcome {
	done := make(chan Outcome, 1)
	go func() {
		res, err := c.Convert(ctx, req, showLog)
		done <- Outcome{Result: res, Err: err}
	}()
	return <-done
}
