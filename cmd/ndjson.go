package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"gltfjsx/internal/convert"
	"gltfjsx/internal/plan"
)

type ndjsonEvent struct {
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Event      string         `json:"event"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}

func emitNDJSON(w io.Writer, level, event, message string, details map[string]any, suggestion string) {
	if w == nil {
		return
	}
	e := ndjsonEvent{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Level:      level,
		Event:      event,
		Message:    message,
		Details:    details,
		Suggestion: suggestion,
	}
	buf, err := json.Marshal(e)
	if err != nil {
		fallback, _ := json.Marshal(ndjsonEvent{
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
			Level:      "error",
			Event:      "logger_error",
			Message:    "failed to encode log event",
			Details:    map[string]any{"reason": err.Error()},
			Suggestion: "check the event details for values that cannot be encoded as JSON",
		})
		_, _ = w.Write(append(fallback, '\n'))
		return
	}
	_, _ = w.Write(append(buf, '\n'))
}

func errorType(err error) string {
	var nameErr *plan.NameExtractionError
	var missingErr *plan.MissingOutputError
	var engineErr *convert.EngineError
	switch {
	case errors.As(err, &nameErr):
		return "name_extraction_error"
	case errors.As(err, &missingErr):
		return "missing_output_error"
	case errors.As(err, &engineErr):
		return "engine_error"
	default:
		return "error"
	}
}

func suggestionForError(err error) string {
	switch errorType(err) {
	case "name_extraction_error":
		return "pass a scene file whose name ends in an extension, e.g. gltfjsx models/Duck.glb -o src"
	case "missing_output_error":
		return "pass --output <dir>, or set output in the --config preset"
	case "engine_error":
		if strings.Contains(err.Error(), "engine not found") {
			return "install the conversion engine or point --engine at its executable"
		}
		return "check the scene file and the engine_log events above; rerun with --debug for more detail"
	}
	if strings.Contains(err.Error(), "preset") {
		return "fix the preset file named in the error, or run without --config"
	}
	return "check the error details; confirm paths and permissions and retry"
}

func suggestionForTopError(errText string) string {
	lower := strings.ToLower(errText)
	switch {
	case strings.Contains(lower, "unknown flag"), strings.Contains(lower, "unknown shorthand flag"):
		return "run gltfjsx --help for the list of supported options"
	case strings.Contains(lower, "invalid argument"):
		return "check the value type of the flag: numbers for precision/printwidth/resolution/weld/ratio/error"
	case strings.Contains(lower, "permission denied"):
		return "check that the scene file is readable and the output directory is writable"
	default:
		return "run gltfjsx --help and check the arguments"
	}
}

func EmitUnhandledError(w io.Writer, err error) {
	if err == nil {
		return
	}
	emitNDJSON(w, "error", "fatal_error", "gltfjsx failed", map[string]any{
		"error": err.Error(),
	}, suggestionForTopError(err.Error()))
}
