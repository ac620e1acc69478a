package convert

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gltfjsx/internal/job"
	"gltfjsx/internal/options"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755))
	return p
}

func testRequest(tmp string) job.Request {
	cfg := options.Defaults()
	cfg.Output = tmp
	return job.Request{
		RunID:      "run-1",
		InputPath:  "models/Duck.glb",
		OutputPath: filepath.Join(tmp, "Duck.jsx"),
		Options:    cfg,
		Header:     "line1\nline2",
		Timeout:    0,
		Delay:      1,
	}
}

func TestExecEngineSuccessForwardsLogs(t *testing.T) {
	tmp := t.TempDir()
	engine := writeScript(t, tmp, "fake-engine.sh",
		"cat > /dev/null\necho 'parsing scene'\necho ''\necho \"writing $2\"\nprintf 'ok' > \"$2\"\nexit 0\n")

	req := testRequest(tmp)
	var logs []string
	res, err := NewExecEngine(engine).Convert(context.Background(), req, func(m string) { logs = append(logs, m) })
	require.NoError(t, err)
	require.Equal(t, 2, res.Logs)
	require.Equal(t, []string{"parsing scene", "writing " + req.OutputPath}, logs)

	out, err := os.ReadFile(req.OutputPath)
	require.NoError(t, err)
	require.Equal(t, "ok", string(out))
}

func TestExecEnginePassesOptionsOnStdin(t *testing.T) {
	tmp := t.TempDir()
	captured := filepath.Join(tmp, "stdin.json")
	argsFile := filepath.Join(tmp, "args.txt")
	engine := writeScript(t, tmp, "fake-engine-capture.sh",
		"cat > '"+captured+"'\necho \"$1|$2\" > '"+argsFile+"'\nexit 0\n")

	req := testRequest(tmp)
	_, err := NewExecEngine(engine).Convert(context.Background(), req, nil)
	require.NoError(t, err)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, req.InputPath+"|"+req.OutputPath+"\n", string(args))

	raw, err := os.ReadFile(captured)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, "line1\nline2", got["header"])
	require.Equal(t, float64(0), got["timeout"])
	require.Equal(t, float64(1), got["delay"])
	require.Equal(t, float64(1000), got["printwidth"])
	require.Equal(t, float64(2), got["precision"])
	require.Equal(t, 0.001, got["error"])
	require.Equal(t, false, got["types"])
	require.Equal(t, tmp, got["output"])
	require.NotContains(t, got, "draco")
}

func TestExecEngineFailureCarriesStderr(t *testing.T) {
	tmp := t.TempDir()
	engine := writeScript(t, tmp, "fake-engine-fail.sh",
		"cat > /dev/null\necho 'starting'\necho 'unsupported glTF version' 1>&2\nexit 3\n")

	var logs []string
	_, err := NewExecEngine(engine).Convert(context.Background(), testRequest(tmp), func(m string) { logs = append(logs, m) })
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	require.Contains(t, err.Error(), "unsupported glTF version")
	require.Equal(t, []string{"starting"}, logs)
}

func TestExecEngineFailureWithoutStderr(t *testing.T) {
	tmp := t.TempDir()
	engine := writeScript(t, tmp, "fake-engine-silent.sh", "cat > /dev/null\nexit 2\n")

	_, err := NewExecEngine(engine).Convert(context.Background(), testRequest(tmp), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exit status 2")
}

func TestExecEngineMissingBinary(t *testing.T) {
	tmp := t.TempDir()
	_, err := NewExecEngine(filepath.Join(tmp, "missing-engine")).Convert(context.Background(), testRequest(tmp), nil)
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	require.Contains(t, err.Error(), "engine not found")
}

func TestEnsureEngineAvailable(t *testing.T) {
	tmp := t.TempDir()
	engine := writeScript(t, tmp, "fake-engine-version.sh",
		"if [ \"$1\" = \"--version\" ]; then echo 'gltfjsx-engine v6.5.3'; exit 0; fi\nexit 0\n")

	info, err := EnsureEngineAvailable(engine)
	require.NoError(t, err)
	require.Equal(t, engine, info.BinaryPath)
	require.Equal(t, "6.5.3", info.Version)

	_, err = EnsureEngineAvailable(filepath.Join(tmp, "missing-engine"))
	require.Error(t, err)
}

func TestExtractVersionToken(t *testing.T) {
	cases := map[string]string{
		"gltfjsx-engine 6.5.3":    "6.5.3",
		"v1.2":                    "1.2.0",
		"gltfjsx@6.5.3-beta.1":    "6.5.3",
		"engine gltfjsx@v2.0.1rc": "2.0.1",
	}
	for line, want := range cases {
		got, ok := extractVersionToken(line)
		require.True(t, ok, line)
		require.Equal(t, want, got)
	}
	for _, line := range []string{"", "engine", "engine x.y", "1"} {
		_, ok := extractVersionToken(line)
		require.False(t, ok, line)
	}
}

func TestEngineErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &EngineError{Err: cause}
	require.ErrorIs(t, err, cause)
	require.Equal(t, "conversion engine failed: boom", err.Error())
}
