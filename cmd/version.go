package cmd

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"gltfjsx/internal/app"
	"gltfjsx/internal/convert"
)

const toolName = "gltfjsx"

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// currentVersion prefers the ldflags value and falls back to the module
// version stamped by "go install".
func currentVersion() app.VersionInfo {
	v := Version
	if v == "dev" {
		if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = strings.TrimPrefix(bi.Main.Version, "v")
		}
	}
	return app.VersionInfo{Name: toolName, Version: v}
}

func versionText() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", toolName, currentVersion().Version, Commit, BuildTime)
}

func printVersion(w io.Writer, enginePath string) {
	details := map[string]any{
		"tool":       toolName,
		"version":    currentVersion().Version,
		"commit":     Commit,
		"build_time": BuildTime,
		"text":       versionText(),
	}
	if info, err := convert.EnsureEngineAvailable(enginePath); err == nil {
		details["engine_path"] = info.BinaryPath
		if info.Version != "" {
			details["engine_version"] = info.Version
		}
	}
	emitNDJSON(w, "info", "version_info", "version information", details, "")
}
