// Package compile implements compile, sheet and tables subcommands: it reads
// props documents, runs them through style compiler and writes results.
package compile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sprop/common"
	"sprop/render"
	"sprop/state"
)

// Stdin is SOURCE name which makes compile read single props document from
// standard input.
const Stdin = "-"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src != Stdin {
		if src, err = filepath.Abs(src); err != nil {
			return err
		}
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if format, err = common.ParseOutputFormat(to); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Cfg.Output.Format), zap.Error(err))
			format = env.Cfg.Output.Format
		}
	}
	if cmd.IsSet("sheet") {
		env.Cfg.Output.IncludeSheet = cmd.Bool("sheet")
	}
	env.Overwrite = cmd.Bool("overwrite")

	if err := env.PrepareEngine(); err != nil {
		return err
	}

	r, err := newRenderer(env, format, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", printable(dst)), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, r, log)
}

// newRenderer prepares renderer according to output configuration.
func newRenderer(env *state.LocalEnv, format common.OutputFormat, log *zap.Logger) (*render.Renderer, error) {
	opts := render.Options{
		Element:  env.Cfg.Output.Element,
		Template: env.Cfg.Output.Template,
	}
	if env.Cfg.Output.IncludeSheet {
		switch format {
		case common.OutputFormatHtml, common.OutputFormatTemplate:
			opts.Sheet = env.Tables.BreakpointSheet(env.Cfg.Output.SheetSelector)
		default:
			log.Debug("Breakpoint stylesheet is not part of the output format, ignoring", zap.Stringer("format", format))
		}
	}
	r, err := render.New(format, opts, log)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare output: %w", err)
	}
	return r, nil
}

func printable(dst string) string {
	if len(dst) == 0 {
		return "STDOUT"
	}
	return dst
}

// openDestination creates output file making sure existing files are not
// silently replaced.
func openDestination(name string, overwrite bool, log *zap.Logger) (*os.File, error) {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return nil, fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.Create(name)
}
