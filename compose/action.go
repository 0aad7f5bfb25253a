package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"textrun/config"
	"textrun/state"
)

// Run is the build subcommand: it reads a script, builds the run and writes
// its dump to DESTINATION or STDOUT. When DESTINATION is a directory the dump
// is named after the script.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no run script has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	dst := cmd.Args().Get(1)
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		// name dump after the script
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".txt"
		dst = filepath.Join(dst, config.CleanFileName(name))
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	env.Overwrite = cmd.Bool("overwrite")

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read run script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("script", src), zap.Int("spans", len(script.Spans)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	composer := NewComposer(env.NewCodec(), env.Cfg.Images.MaxSize, env.Log)
	b, err := composer.Build(ctx, script, filepath.Dir(src))
	if err != nil {
		return fmt.Errorf("unable to build run: %w", err)
	}

	out, closeOut, err := openDestination(dst, env.Overwrite)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close destination: %w", cerr)
		}
	}()

	if _, err = io.WriteString(out, Dump(b, env.Defaults)); err != nil {
		return fmt.Errorf("unable to write run: %w", err)
	}
	return nil
}

func openDestination(dst string, overwrite bool) (io.Writer, func() error, error) {
	if len(dst) == 0 {
		return os.Stdout, func() error { return nil }, nil
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return nil, nil, fmt.Errorf("destination %q already exists", dst)
	}
	f, err := os.Create(dst)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create destination file '%s': %w", dst, err)
	}
	return f, f.Close, nil
}
