package app

import (
	"gltfjsx/internal/convert"
	"gltfjsx/internal/options"
)

type Options struct {
	Input  string
	Config options.Config
	// Args are the raw command-line arguments, recorded in the header.
	Args       []string
	Version    VersionProvider
	// EnginePath picks the engine executable when Engine is nil.
	EnginePath string
	Engine     convert.Engine
	ShowLog    convert.LogFunc
}

type Result struct {
	RunID      string
	InputPath  string
	OutputPath string
	Header     string
	Logs       int
}
