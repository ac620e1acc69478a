package app

import "strings"

const Attribution = "Auto-generated by: https://github.com/pmndrs/gltfjsx"

type VersionInfo struct {
	Name    string
	Version string
}

// VersionProvider supplies the tool identity recorded in generated files.
type VersionProvider interface {
	VersionInfo() VersionInfo
}

// StaticVersion is a VersionProvider for a fixed name and version.
type StaticVersion VersionInfo

func (s StaticVersion) VersionInfo() VersionInfo {
	return VersionInfo(s)
}

// BuildHeader renders the two-line provenance header. Downstream tools scan
// generated files for the "Command:" line, so its shape must not change.
func BuildHeader(v VersionInfo, args []string) string {
	return Attribution + "\nCommand: " + v.Name + "@" + v.Version + " " + strings.Join(args, " ")
}
