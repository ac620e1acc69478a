package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"

	"gltfjsx/internal/convert"
	"gltfjsx/internal/job"
	"gltfjsx/internal/plan"
	"gltfjsx/internal/runner"
)

// Run derives the output path for opts.Input and calls the engine once.
// Derivation failures come back as *plan.NameExtractionError or
// *plan.MissingOutputError; anything the engine raises as *convert.EngineError.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Version == nil {
		return Result{}, fmt.Errorf("no version provider configured")
	}

	target, err := plan.BuildTarget(opts.Input, plan.Options{
		OutputDir: opts.Config.Output,
		Types:     opts.Config.Types,
	})
	if err != nil {
		return Result{}, err
	}

	req := job.Request{
		RunID:      uuid.NewString(),
		InputPath:  opts.Input,
		OutputPath: target,
		Options:    opts.Config,
		Header:     BuildHeader(opts.Version.VersionInfo(), opts.Args),
		Timeout:    0,
		Delay:      1,
	}
	result := Result{
		RunID:      req.RunID,
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Header:     req.Header,
	}

	engine := opts.Engine
	if engine == nil {
		engine = convert.NewExecEngine(opts.EnginePath)
	}

	showLog := func(message string) {
		capitan.Info(ctx, EngineLogged,
			RunIDKey.Field(req.RunID),
			MessageKey.Field(message),
		)
		if opts.ShowLog != nil {
			opts.ShowLog(message)
		}
	}

	capitan.Info(ctx, ConversionStarted,
		RunIDKey.Field(req.RunID),
		InputKey.Field(req.InputPath),
		OutputKey.Field(req.OutputPath),
	)
	start := time.Now()

	out := runner.Run(ctx, req, engine, showLog)
	if out.Err != nil {
		err := out.Err
		var engineErr *convert.EngineError
		if !errors.As(err, &engineErr) {
			err = &convert.EngineError{Err: err}
		}
		capitan.Error(ctx, ConversionFailed,
			RunIDKey.Field(req.RunID),
			InputKey.Field(req.InputPath),
			OutputKey.Field(req.OutputPath),
			ErrorKey.Field(err.Error()),
			ErrorTypeKey.Field("engine_error"),
		)
		return result, err
	}

	result.Logs = out.Result.Logs
	capitan.Info(ctx, ConversionCompleted,
		RunIDKey.Field(req.RunID),
		InputKey.Field(req.InputPath),
		OutputKey.Field(req.OutputPath),
		DurationMsKey.Field(int(time.Since(start).Milliseconds())),
	)
	return result, nil
}
