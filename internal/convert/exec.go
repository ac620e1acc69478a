package convert

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"gltfjsx/internal/job"
	"gltfjsx/internal/options"
)

const DefaultEngineBinary = "gltfjsx-engine"

var execCommandContext = exec.CommandContext
var execLookPath = exec.LookPath

type EngineInfo struct {
	BinaryPath string
	Version    string
}

// ExecEngine runs the conversion engine as a child process:
//
//	<engine> <inputPath> <outputPath>
//
// with the JSON options object on stdin. Each stdout line is a log message.
type ExecEngine struct {
	EnginePath string
}

func NewExecEngine(enginePath string) *ExecEngine {
	return &ExecEngine{EnginePath: enginePath}
}

// wireOptions is the options object as the engine reads it: the flat option
// record plus the invocation extras.
type wireOptions struct {
	options.Config
	Header  string `json:"header"`
	Timeout int    `json:"timeout"`
	Delay   int    `json:"delay"`
	RunID   string `json:"runId,omitempty"`
}

func EncodeOptions(req job.Request) ([]byte, error) {
	return json.Marshal(wireOptions{
		Config:  req.Options,
		Header:  req.Header,
		Timeout: req.Timeout,
		Delay:   req.Delay,
		RunID:   req.RunID,
	})
}

func EnsureEngineAvailable(enginePath string) (EngineInfo, error) {
	bin := engineBinary(enginePath)
	resolved, err := execLookPath(bin)
	if err != nil {
		return EngineInfo{}, fmt.Errorf("engine not found (%s). %s; or pass --engine with its path", bin, installHint(runtime.GOOS))
	}
	version, err := detectEngineVersion(resolved)
	if err != nil {
		// version output is informational only
		version = ""
	}
	return EngineInfo{BinaryPath: resolved, Version: version}, nil
}

func (e *ExecEngine) Convert(ctx context.Context, req job.Request, showLog LogFunc) (job.Result, error) {
	res := job.Result{Request: req}

	bin := engineBinary(e.EnginePath)
	resolved, err := execLookPath(bin)
	if err != nil {
		return res, &EngineError{Err: fmt.Errorf("engine not found (%s). %s; or pass --engine with its path", bin, installHint(runtime.GOOS))}
	}

	payload, err := EncodeOptions(req)
	if err != nil {
		return res, &EngineError{Err: fmt.Errorf("encode engine options: %w", err)}
	}

	cmd := execCommandContext(ctx, resolved, req.InputPath, req.OutputPath)
	cmd.Stdin = bytes.NewReader(payload)
	stderr := bytes.NewBuffer(nil)
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return res, &EngineError{Err: err}
	}
	if err := cmd.Start(); err != nil {
		return res, &EngineError{Err: fmt.Errorf("start engine: %w", err)}
	}

	res.Logs, err = forwardLines(stdout, showLog)
	if err != nil {
		// drain so Wait does not block on a full pipe
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	if waitErr != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = waitErr.Error()
		}
		return res, &EngineError{Err: errors.New(reason)}
	}
	if err != nil {
		return res, &EngineError{Err: fmt.Errorf("read engine output: %w", err)}
	}
	return res, nil
}

func forwardLines(r io.Reader, showLog LogFunc) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		count++
		if showLog != nil {
			showLog(line)
		}
	}
	return count, scanner.Err()
}

func engineBinary(enginePath string) string {
	bin := strings.TrimSpace(enginePath)
	if bin == "" {
		bin = DefaultEngineBinary
	}
	return bin
}

func detectEngineVersion(binPath string) (string, error) {
	cmd := execCommandContext(context.Background(), binPath, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("run engine --version: %w", err)
	}
	line := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	if line == "" {
		return "", fmt.Errorf("read engine version: empty output")
	}
	ver, ok := extractVersionToken(line)
	if !ok {
		return "", fmt.Errorf("unrecognized engine version: %s", line)
	}
	return ver, nil
}

// extractVersionToken accepts "<name> <semver>" or a bare "<semver>", with or
// without a leading "v", and normalizes it to major.minor.patch.
func extractVersionToken(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	raw := fields[len(fields)-1]
	if i := strings.LastIndex(raw, "@"); i >= 0 {
		raw = raw[i+1:]
	}
	raw = strings.TrimPrefix(raw, "v")
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return "", false
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return "", false
	}
	if len(parts) == 2 {
		return parts[0] + "." + parts[1] + ".0", true
	}
	patch := leadingDigits(parts[2])
	if patch == "" {
		return "", false
	}
	return parts[0] + "." + parts[1] + "." + patch, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

func leadingDigits(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func installHint(goos string) string {
	switch goos {
	case "windows":
		return "install it and make sure gltfjsx-engine.exe is on PATH"
	default:
		return "install it and make sure gltfjsx-engine is on PATH"
	}
}
