package compose

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"textrun/config"
	"textrun/state"
)

func newTestContext(t *testing.T) context.Context {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	return ctx
}

func newBuildCommand() *cli.Command {
	return &cli.Command{
		Name:   "build",
		Action: Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite"},
		},
	}
}

func writeScript(t *testing.T, dir string) string {
	t.Helper()
	writeTestImage(t, dir, "dot.png", 4, 2)
	name := filepath.Join(dir, "sample.yaml")
	if err := os.WriteFile(name, []byte(testScript), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return name
}

func TestRun_ToFile(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir)
	dst := filepath.Join(dir, "out.txt")

	if err := newBuildCommand().Run(newTestContext(t), []string{"build", script, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{
		"run: 4 spans, 13 characters",
		`text: "Hello "`,
		"alignment = center",
		"mime = image/png",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dump does not contain %q:\n%s", want, data)
		}
	}
}

func TestRun_ToDirectory(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir)
	out := t.TempDir()

	if err := newBuildCommand().Run(newTestContext(t), []string{"build", script, out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "sample.txt")); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}

func TestRun_Overwrite(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir)
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := newBuildCommand().Run(newTestContext(t), []string{"build", script, dst})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("Run() error = %v, want existing destination error", err)
	}

	if err := newBuildCommand().Run(newTestContext(t), []string{"build", "--overwrite", script, dst}); err != nil {
		t.Fatalf("Run(--overwrite) error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) == "old" {
		t.Error("destination was not overwritten")
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spans:\n  - image: nowhere.png\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no script", []string{"build"}, "no run script"},
		{"missing script", []string{"build", filepath.Join(dir, "missing.yaml")}, "unable to read run script"},
		{"missing image", []string{"build", bad}, "unable to build run"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newBuildCommand().Run(newTestContext(t), tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Run() error = %v, want %q", err, tt.want)
			}
		})
	}
}
