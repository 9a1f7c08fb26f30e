package sim

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
	"life-frames/pkg/pattern"
)

// memSink keeps a rendering of every frame it receives.
type memSink struct {
	mu     sync.Mutex
	frames map[int]string
	order  []int
	failAt int
}

func newMemSink() *memSink { return &memSink{frames: map[int]string{}, failAt: -1} }

func (s *memSink) WriteFrame(i int, g *core.Grid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i == s.failAt {
		return fmt.Errorf("%w: disk full", core.ErrFileOpen)
	}
	s.frames[i] = g.String()
	s.order = append(s.order, i)
	return nil
}

func blinkerGrid(t *testing.T, b core.Boundary) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(5, 5, b)
	if err != nil {
		t.Fatal(err)
	}
	pattern.Blinker.Centre(g)
	return g
}

func testConfig(n int) Config {
	cfg := DefaultConfig()
	cfg.Generations = n
	cfg.Workers = 2
	return cfg
}

func TestRunGridEmitsEveryGeneration(t *testing.T) {
	const horizontal = ".....\n.....\n.OOO.\n.....\n.....\n"
	const vertical = ".....\n..O..\n..O..\n..O..\n.....\n"

	for _, overlap := range []bool{false, true} {
		cfg := testConfig(5)
		cfg.Overlap = overlap
		cfg.Stats = true
		sink := newMemSink()
		d := NewDriver(cfg, sink, nil)

		sum, err := d.RunGrid(blinkerGrid(t, core.Padded))
		if err != nil {
			t.Fatalf("overlap=%v: %v", overlap, err)
		}
		if d.State() != StateDone {
			t.Fatalf("overlap=%v: state %v, want done", overlap, d.State())
		}
		if sum.Frames != 6 || len(sink.frames) != 6 {
			t.Fatalf("overlap=%v: %d frames reported, %d written", overlap, sum.Frames, len(sink.frames))
		}
		for i, idx := range sink.order {
			if idx != i {
				t.Fatalf("overlap=%v: frames written out of order: %v", overlap, sink.order)
			}
		}
		for i := 0; i <= 5; i++ {
			want := horizontal
			if i%2 == 1 {
				want = vertical
			}
			if sink.frames[i] != want {
				t.Fatalf("overlap=%v: frame %d\n%s\nwant\n%s", overlap, i, sink.frames[i], want)
			}
		}
		if sum.Totals != (core.Counts{Births: 10, Deaths: 10}) || sum.Population != 3 {
			t.Fatalf("overlap=%v: totals %+v population %d", overlap, sum.Totals, sum.Population)
		}
		if len(sum.History) != 6 || sum.History[0] != (core.StepStats{Population: 3}) {
			t.Fatalf("overlap=%v: history %+v", overlap, sum.History)
		}
		if last := sum.History[5]; last != (core.StepStats{Generation: 5, Population: 3, Births: 2, Deaths: 2}) {
			t.Fatalf("overlap=%v: last history entry %+v", overlap, last)
		}
	}
}

func TestZeroGenerationsWritesInitialFrameOnly(t *testing.T) {
	sink := newMemSink()
	sum, err := NewDriver(testConfig(0), sink, nil).RunGrid(blinkerGrid(t, core.Clipped))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Frames != 1 || len(sink.frames) != 1 {
		t.Fatalf("frames %d/%d, want 1", sum.Frames, len(sink.frames))
	}
}

func TestRunFromFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "init.pbm")
	g, _ := core.NewGrid(16, 12, core.Clipped)
	pattern.Glider.Stamp(g, 0, 0)
	if err := pbm.WriteFile(input, g); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(8)
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "frames")
	if err := os.Mkdir(cfg.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	d := NewDriver(cfg, nil, log.New(&logs, "", 0))
	if _, err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "width = 16, height = 12") {
		t.Fatalf("load not logged: %q", logs.String())
	}

	frames, err := ListFrames(cfg.OutputDir, ".pbm")
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 9 || filepath.Base(frames[8]) != "frame_0008.pbm" {
		t.Fatalf("frames = %v", frames)
	}
	last, err := pbm.ReadFile(frames[8], core.Clipped)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := core.NewGrid(16, 12, core.Clipped)
	pattern.Glider.Stamp(want, 2, 2)
	if !last.Equal(want) {
		t.Fatalf("frame 8\n%s\nwant\n%s", last, want)
	}

	if _, err := d.Run(); !errors.Is(err, ErrAlreadyRun) {
		t.Fatalf("second Run err = %v", err)
	}
}

func TestLoadFailuresAbort(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.pbm")
	if err := os.WriteFile(bad, []byte("P1 2 2 0 1 2 0"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		input string
		want  error
	}{
		{filepath.Join(dir, "missing.pbm"), core.ErrFileOpen},
		{bad, core.ErrFormat},
	}
	for _, tc := range cases {
		cfg := testConfig(3)
		cfg.Input = tc.input
		sink := newMemSink()
		d := NewDriver(cfg, sink, nil)
		_, err := d.Run()

		var se *StageError
		if !errors.As(err, &se) || se.Stage != StateLoading {
			t.Fatalf("%s: err = %v, want loading StageError", tc.input, err)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.input, err, tc.want)
		}
		if d.State() != StateAborted || len(sink.frames) != 0 {
			t.Fatalf("%s: state %v with %d frames", tc.input, d.State(), len(sink.frames))
		}
	}
}

func TestInvalidConfigAborts(t *testing.T) {
	cfg := testConfig(3)
	cfg.Kernel = "gpu"
	d := NewDriver(cfg, newMemSink(), nil)
	if _, err := d.RunGrid(blinkerGrid(t, core.Padded)); err == nil || d.State() != StateAborted {
		t.Fatalf("err = %v, state = %v", err, d.State())
	}

	cfg = testConfig(-1)
	d = NewDriver(cfg, newMemSink(), nil)
	if _, err := d.RunGrid(blinkerGrid(t, core.Padded)); !errors.Is(err, core.ErrDimension) {
		t.Fatalf("negative generations err = %v", err)
	}
}

func TestSinkFailureKeepsEarlierFrames(t *testing.T) {
	for _, overlap := range []bool{false, true} {
		cfg := testConfig(6)
		cfg.Overlap = overlap
		sink := newMemSink()
		sink.failAt = 3
		d := NewDriver(cfg, sink, nil)

		_, err := d.RunGrid(blinkerGrid(t, core.Padded))
		var se *StageError
		if !errors.As(err, &se) || se.Stage != StateStepping || se.Frame != 3 {
			t.Fatalf("overlap=%v: err = %v", overlap, err)
		}
		if !errors.Is(err, core.ErrFileOpen) {
			t.Fatalf("overlap=%v: err = %v, want ErrFileOpen", overlap, err)
		}
		if !strings.HasPrefix(err.Error(), "stepping (frame 3)") {
			t.Fatalf("overlap=%v: message %q", overlap, err.Error())
		}
		if d.State() != StateAborted || len(sink.frames) != 3 {
			t.Fatalf("overlap=%v: state %v, frames %v", overlap, d.State(), sink.order)
		}
	}
}

func TestInitialFrameFailureAbortsInReady(t *testing.T) {
	sink := newMemSink()
	sink.failAt = 0
	d := NewDriver(testConfig(2), sink, nil)
	_, err := d.RunGrid(blinkerGrid(t, core.Clipped))
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StateReady {
		t.Fatalf("err = %v, want ready StageError", err)
	}
}
