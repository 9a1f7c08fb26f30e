// Package pbm reads and writes grids as plain (ASCII, P1) portable bitmaps.
//
// The decoder tokenises on arbitrary whitespace, so row-per-line files and
// files with every pixel on one line are both accepted. The encoder always
// terminates each row with a newline.
package pbm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"life-frames/internal/core"
)

// Magic identifies a plain, single bit-plane bitmap.
const Magic = "P1"

// Decode parses a P1 bitmap into a grid allocated with the given boundary.
func Decode(r io.Reader, b core.Boundary) (*core.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) ([]byte, error) {
		if sc.Scan() {
			return sc.Bytes(), nil
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", core.ErrFormat, what, err)
		}
		return nil, fmt.Errorf("%w: unexpected end of input reading %s", core.ErrFormat, what)
	}

	tok, err := next("marker")
	if err != nil {
		return nil, err
	}
	if string(tok) != Magic {
		return nil, fmt.Errorf("%w: marker %q, want %q", core.ErrFormat, tok, Magic)
	}
	w, err := dimension(next, "width")
	if err != nil {
		return nil, err
	}
	h, err := dimension(next, "height")
	if err != nil {
		return nil, err
	}

	g, err := core.NewGrid(w, h, b)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		row := g.Row(y)
		for x := range row {
			tok, err := next("pixel")
			if err != nil {
				return nil, fmt.Errorf("%w (pixel %d of %d)", err, y*w+x, w*h)
			}
			if len(tok) != 1 || (tok[0] != '0' && tok[0] != '1') {
				return nil, fmt.Errorf("%w: pixel %d at (%d,%d) is %q, want 0 or 1", core.ErrFormat, y*w+x, x, y, tok)
			}
			row[x] = tok[0] - '0'
		}
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%w: trailing token %q after %d pixels", core.ErrFormat, sc.Bytes(), w*h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFormat, err)
	}
	return g, nil
}

func dimension(next func(string) ([]byte, error), what string) (int, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", core.ErrFormat, what, tok)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %w: %s %d is not positive", core.ErrFormat, core.ErrDimension, what, v)
	}
	return v, nil
}

// Encode writes g as a P1 bitmap with one text line per grid row.
func Encode(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", Magic, g.W, g.H); err != nil {
		return err
	}
	line := bytes.Repeat([]byte{'0', ' '}, g.W)
	line[len(line)-1] = '\n'
	for y := 0; y < g.H; y++ {
		for x, c := range g.Row(y) {
			line[2*x] = '0' + c
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
