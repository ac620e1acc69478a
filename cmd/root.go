package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gltfjsx/internal/app"
	"gltfjsx/internal/convert"
	"gltfjsx/internal/options"
	"gltfjsx/internal/preset"
)

type cliFlags struct {
	configPath  string
	enginePath  string
	showVersion bool
}

// engineOverride replaces the engine app.Run would build from --engine.
var engineOverride convert.Engine

func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr, os.Args[1:]).Execute()
}

// NewRootCmd builds the command for one run. args are the raw arguments
// without the program name; they are parsed and also recorded verbatim in the
// provenance header.
func NewRootCmd(stdout io.Writer, stderr io.Writer, args []string) *cobra.Command {
	flags := &cliFlags{}
	version := app.StaticVersion(currentVersion())

	root := &cobra.Command{
		Use:   "gltfjsx [Model.glb] [options]",
		Short: "Turn a GLTF/GLB scene into a declarative JSX component",
		Long: `Turn a GLTF/GLB scene into a declarative JSX component.

Input rules:
  - Exactly one scene file; further positional arguments are ignored.
  - The component is named after the file: models/duck.glb -> Duck.jsx
    (Duck.tsx with --types). Only the last extension is dropped.

Output rules:
  - --output is the directory the component is written to and is required.
  - --config loads defaults from an HCL preset; flags on the command line win.`,
		Example: `  gltfjsx models/Duck.glb -o src/components
  gltfjsx scene.gltf --types --transform --resolution 512 -o src
  gltfjsx scene.glb --config gltfjsx.hcl
  gltfjsx --version`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	root.CompletionOptions.DisableDefaultCmd = true

	binding := options.Bind(root.Flags())
	root.Flags().StringVar(&flags.configPath, "config", "", "HCL preset with default options")
	root.Flags().StringVar(&flags.enginePath, "engine", convert.DefaultEngineBinary, "Conversion engine executable")
	root.Flags().BoolVarP(&flags.showVersion, "version", "v", false, "Show version information")

	root.RunE = runConvert(stdout, stderr, binding, flags, version, args)
	return root
}

func runConvert(stdout io.Writer, stderr io.Writer, binding *options.Binding, flags *cliFlags, version app.VersionProvider, rawArgs []string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if flags.showVersion {
			printVersion(stdout, flags.enginePath)
			return nil
		}

		base := options.Defaults()
		if len(args) > 0 && flags.configPath != "" {
			loaded, err := preset.Load(flags.configPath, base)
			if err != nil {
				return reportFailure(stderr, "", err)
			}
			base = loaded
		}

		cfg, input, err := binding.Normalize(args, base)
		if err != nil {
			var usageErr *options.UsageError
			if errors.As(err, &usageErr) {
				return cmd.Help()
			}
			return reportFailure(stderr, "", err)
		}

		_, err = app.Run(cmd.Context(), app.Options{
			Input:      input,
			Config:     cfg,
			Args:       rawArgs,
			Version:    version,
			EnginePath: flags.enginePath,
			Engine:     engineOverride,
			ShowLog: func(message string) {
				emitNDJSON(stdout, "info", "engine_log", message, nil, "")
			},
		})
		if err != nil {
			return reportFailure(stderr, input, err)
		}
		return nil
	}
}

func reportFailure(stderr io.Writer, input string, err error) error {
	details := map[string]any{
		"error":      err.Error(),
		"error_type": errorType(err),
	}
	if input != "" {
		details["input"] = input
	}
	emitNDJSON(stderr, "error", "convert_failed", "conversion failed", details, suggestionForError(err))
	return fmt.Errorf("%w: %v", errReported, err)
}
