package video

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"life-frames/internal/core"
	"life-frames/internal/sim"
	"life-frames/pkg/pattern"
)

func writeRun(t *testing.T, dir string, n int) {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.OutputDir = dir
	cfg.Generations = n
	g, _ := core.NewGrid(16, 16, core.Padded)
	pattern.Glider.Stamp(g, 1, 1)
	if _, err := sim.NewDriver(cfg, nil, nil).RunGrid(g); err != nil {
		t.Fatal(err)
	}
}

func TestAssembleDir(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir, 5)
	out := filepath.Join(t.TempDir(), "life.avi")

	opts := DefaultOptions()
	opts.Scale = 4
	opts.FPS = 10
	n, err := AssembleDir(dir, ".pbm", out, opts)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("encoded %d frames, want 6", n)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || !bytes.Equal(data[:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("AVI ")) {
		t.Fatalf("output is not an AVI file (%d bytes)", len(data))
	}
}

func TestAssembleRejectsMixedSizes(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir, 1)
	odd, _ := core.NewGrid(8, 8, core.Clipped)
	cfg := sim.DefaultConfig()
	cfg.OutputDir = dir
	if err := sim.NewDirSink(cfg).WriteFrame(2, odd); err != nil {
		t.Fatal(err)
	}

	_, err := AssembleDir(dir, ".pbm", filepath.Join(t.TempDir(), "x.avi"), DefaultOptions())
	if !errors.Is(err, core.ErrDimension) {
		t.Fatalf("err = %v, want ErrDimension", err)
	}
}

func TestAssembleEmpty(t *testing.T) {
	if _, err := AssembleDir(t.TempDir(), ".pbm", "x.avi", DefaultOptions()); !errors.Is(err, core.ErrFileOpen) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Assemble(nil, "x.avi", DefaultOptions()); err == nil {
		t.Fatal("expected error for no frames")
	}
}
