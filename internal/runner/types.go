package runner

import "gltfjsx/internal/job"

// Outcome is what the single engine call produced.
type Outcome struct {
	Result job.Result
	Err    error
}
