package job

import "gltfjsx/internal/options"

// Request is everything the engine receives for one conversion.
type Request struct {
	RunID      string
	InputPath  string
	OutputPath string
	Options    options.Config
	Header     string
	// Timeout 0 means the engine enforces no timeout.
	Timeout int
	// Delay is a scheduling hint consumed only by the engine.
	Delay int
}

type Result struct {
	Request Request
	Logs    int
}
