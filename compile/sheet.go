package compile

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sprop/state"
)

// RunSheet writes stylesheet switching breakpoint toggles on and off.
func RunSheet(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("sheet")

	selector := env.Cfg.Output.SheetSelector
	if cmd.IsSet("selector") {
		selector = cmd.String("selector")
	}

	if err := env.PrepareEngine(); err != nil {
		return err
	}

	return writeOut(cmd, env, log, "stylesheet", func(w io.Writer) error {
		_, err := env.Tables.BreakpointSheet(selector).WriteTo(w)
		return err
	})
}

// RunTables writes effective property tables definition. Result may be
// edited and used as definition_path.
func RunTables(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("tables")

	if err := env.PrepareEngine(); err != nil {
		return err
	}

	return writeOut(cmd, env, log, "property tables", func(w io.Writer) error {
		return env.Tables.Definition().Encode(w)
	})
}

// writeOut sends output of single destination commands to the file named by
// the first argument or to STDOUT.
func writeOut(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger, what string, write func(io.Writer) error) error {
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var out io.Writer = stdout
	fname := cmd.Args().Get(0)
	if len(fname) > 0 {
		f, err := openDestination(fname, env.Overwrite || cmd.Bool("overwrite"), log)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	} else {
		fname = "STDOUT"
	}

	log.Info("Outputing "+what, zap.String("file", fname))
	if err := write(out); err != nil {
		return fmt.Errorf("unable to write %s: %w", what, err)
	}
	return nil
}
