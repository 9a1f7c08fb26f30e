package sim

import (
	"fmt"
	"path/filepath"
	"strconv"

	"life-frames/internal/core"
	"life-frames/internal/pbm"
)

// FrameSink receives each generation in order, starting with frame 0.
// Implementations must not retain g after WriteFrame returns.
type FrameSink interface {
	WriteFrame(index int, g *core.Grid) error
}

// DirSink writes frames as numbered P1 bitmaps in an existing directory.
type DirSink struct {
	Dir    string
	Prefix string
	Ext    string
	Digits int
}

// NewDirSink returns a sink for cfg. The index width grows past cfg.Digits
// when needed so that filenames sort in generation order.
func NewDirSink(cfg Config) *DirSink {
	digits := cfg.Digits
	if n := len(strconv.Itoa(cfg.Generations)); n > digits {
		digits = n
	}
	return &DirSink{Dir: cfg.OutputDir, Prefix: cfg.Prefix, Ext: cfg.Ext, Digits: digits}
}

// Name returns the filename of frame index.
func (s *DirSink) Name(index int) string {
	return fmt.Sprintf("%s%0*d%s", s.Prefix, s.Digits, index, s.Ext)
}

// Path returns the full path of frame index.
func (s *DirSink) Path(index int) string {
	return filepath.Join(s.Dir, s.Name(index))
}

// WriteFrame encodes g into the file for index.
func (s *DirSink) WriteFrame(index int, g *core.Grid) error {
	return pbm.WriteFile(s.Path(index), g)
}
