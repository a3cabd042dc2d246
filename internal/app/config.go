package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"lifebox/internal/core"

	"github.com/caarlos0/env/v11"
)

// Slot store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config represents the startup parameters for the application. Environment
// variables provide defaults and command-line flags override them.
type Config struct {
	ViewportW  int     `env:"LIFEBOX_VIEWPORT_W" envDefault:"1440"`
	ViewportH  int     `env:"LIFEBOX_VIEWPORT_H" envDefault:"810"`
	CellSize   int     `env:"LIFEBOX_CELL_SIZE" envDefault:"16"`
	Scale      float64 `env:"LIFEBOX_SCALE" envDefault:"0.75"`
	Speed      int     `env:"LIFEBOX_SPEED" envDefault:"4"`
	TPS        int     `env:"LIFEBOX_TPS" envDefault:"60"`
	Fullscreen bool    `env:"LIFEBOX_FULLSCREEN" envDefault:"false"`
	Seed       int64   `env:"LIFEBOX_SEED" envDefault:"42"`
	SlotsPath  string  `env:"LIFEBOX_SLOTS_PATH" envDefault:"saved_boards.json"`
	Store      string  `env:"LIFEBOX_STORE" envDefault:"json"`
}

// ParseConfig loads environment defaults, then parses args with fs.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		return nil, errors.New("flag parser is required")
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.ViewportW, "width", c.ViewportW, "viewport width in pixels")
	fs.IntVar(&c.ViewportH, "height", c.ViewportH, "viewport height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels before scaling")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "cell size multiplier")
	fs.IntVar(&c.Speed, "speed", c.Speed, "frames per generation (2-15, lower is faster)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen mode")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomization")
	fs.StringVar(&c.SlotsPath, "slots", c.SlotsPath, "save slot file")
	fs.StringVar(&c.Store, "store", c.Store, "save slot backend (json or sqlite)")
}

// Validate rejects configurations the application cannot start with.
func (c *Config) Validate() error {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportW, c.ViewportH)
	}
	if c.CellSize <= 0 || c.Scale <= 0 {
		return fmt.Errorf("cell size must be positive, got %d x %g", c.CellSize, c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if strings.TrimSpace(c.SlotsPath) == "" {
		return errors.New("slots path is required")
	}
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}

// CellPixels returns the on-screen size of one cell.
func (c *Config) CellPixels() int {
	px := int(float64(c.CellSize) * c.Scale)
	if px < 1 {
		px = 1
	}
	return px
}

// GridSize returns the board dimensions that cover the viewport, margin
// included.
func (c *Config) GridSize() core.Size {
	cell := c.CellPixels()
	return core.Size{W: c.ViewportW/cell + 2, H: c.ViewportH/cell + 2}
}
