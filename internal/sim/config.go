package sim

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"life-frames/internal/core"
	"life-frames/internal/kernel"
)

// Config describes one simulation run.
type Config struct {
	Input       string `json:"input"`
	OutputDir   string `json:"output_dir"`
	Generations int    `json:"generations"`

	Boundary string `json:"boundary"`
	Kernel   string `json:"kernel"`
	Workers  int    `json:"workers"`

	Prefix string `json:"prefix"`
	Ext    string `json:"ext"`
	Digits int    `json:"digits"`

	// Overlap writes frame i-1 while generation i is being computed.
	Overlap bool `json:"overlap"`
	// Stats records per-generation population, births and deaths.
	Stats bool `json:"stats"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Input:       "image_init.pbm",
		OutputDir:   "images",
		Generations: 100,
		Boundary:    "padded",
		Kernel:      "swar",
		Prefix:      "frame_",
		Ext:         ".pbm",
		Digits:      4,
	}
}

// FromMap populates a Config from flag-style key/value pairs. Values that do
// not parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge overrides c with the recognised keys of cfg, using the same names as
// the command-line flags.
func (c Config) Merge(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["input"]; ok && v != "" {
		c.Input = v
	}
	if v, ok := cfg["out"]; ok && v != "" {
		c.OutputDir = v
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok && v != "" {
		c.Boundary = v
	}
	if v, ok := cfg["kernel"]; ok && v != "" {
		c.Kernel = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["prefix"]; ok {
		c.Prefix = v
	}
	if v, ok := cfg["ext"]; ok && v != "" {
		c.Ext = v
	}
	if v, ok := cfg["digits"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Digits = parsed
		}
	}
	if v, ok := cfg["overlap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Overlap = parsed
		}
	}
	if v, ok := cfg["stats"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Stats = parsed
		}
	}
	return c
}

// LoadConfig overlays the JSON document at path onto the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("%w: %v", core.ErrFileOpen, err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "initial P1 bitmap")
	fs.StringVar(&c.OutputDir, "out", c.OutputDir, "directory receiving one frame per generation")
	fs.IntVar(&c.Generations, "n", c.Generations, "number of generations to compute")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary policy: clipped or padded")
	fs.StringVar(&c.Kernel, "kernel", c.Kernel, "step kernel: scalar or swar")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel row bands per step (0 = one per CPU)")
	fs.StringVar(&c.Prefix, "prefix", c.Prefix, "frame filename prefix")
	fs.StringVar(&c.Ext, "ext", c.Ext, "frame filename extension")
	fs.IntVar(&c.Digits, "digits", c.Digits, "minimum zero-padded width of the frame index")
	fs.BoolVar(&c.Overlap, "overlap", c.Overlap, "write each frame while the next generation is computed")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "record per-generation population, births and deaths")
}

// Validate checks the values that cannot be corrected silently. Every
// failure wraps core.ErrDimension.
func (c Config) Validate() error {
	if c.Generations < 0 {
		return fmt.Errorf("%w: negative generation count %d", core.ErrDimension, c.Generations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", core.ErrDimension, c.Workers)
	}
	if _, err := core.ParseBoundary(c.Boundary); err != nil {
		return fmt.Errorf("%w: %w", core.ErrDimension, err)
	}
	if _, err := kernel.Lookup(c.Kernel); err != nil {
		return fmt.Errorf("%w: %w", core.ErrDimension, err)
	}
	return nil
}

// Executor resolves the configured kernel and worker count.
func (c Config) Executor() (*kernel.Executor, error) {
	k, err := kernel.Lookup(c.Kernel)
	if err != nil {
		return nil, err
	}
	return kernel.NewExecutor(k, c.Workers), nil
}
