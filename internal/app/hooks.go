package app

import "github.com/zoobzio/capitan"

// Signals emitted around the engine call.
const (
	ConversionStarted   = capitan.Signal("gltfjsx.convert.started")
	ConversionCompleted = capitan.Signal("gltfjsx.convert.completed")
	ConversionFailed    = capitan.Signal("gltfjsx.convert.failed")
	EngineLogged        = capitan.Signal("gltfjsx.engine.log")
)

// Keys for signal fields.
var (
	RunIDKey      = capitan.NewStringKey("gltfjsx.run.id")
	InputKey      = capitan.NewStringKey("gltfjsx.input")
	OutputKey     = capitan.NewStringKey("gltfjsx.output")
	MessageKey    = capitan.NewStringKey("gltfjsx.message")
	ErrorKey      = capitan.NewStringKey("gltfjsx.error")
	ErrorTypeKey  = capitan.NewStringKey("gltfjsx.error.type")
	DurationMsKey = capitan.NewIntKey("gltfjsx.duration.ms")
)
