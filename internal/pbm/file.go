package pbm

import (
	"fmt"
	"os"

	"life-frames/internal/core"
)

// ReadFile decodes the bitmap stored at path.
func ReadFile(path string, b core.Boundary) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}
	defer f.Close()

	g, err := Decode(f, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteFile encodes g to path, replacing any existing file.
func WriteFile(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %v", core.ErrFileOpen, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", core.ErrFileOpen, path, err)
	}
	return nil
}
