package asciiray

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Config controls how the fixed scene is sampled, never the scene itself.
type Config struct {
	Width     int // image width in pixels
	Height    int // image height in pixels
	PixelSize int // sample every PixelSize-th pixel in both directions
	Workers   int // rows rendered concurrently; 1 renders sequentially
}

// DefaultConfig is the 250x250 full-resolution frame.
func DefaultConfig() *Config {
	return &Config{
		Width:     Width,
		Height:    Height,
		PixelSize: PixelSize,
		Workers:   imax(runtime.NumCPU(), 1),
	}
}

// Cols and Rows return the number of samples per row and the number of rows.
func (c *Config) Cols() int { return steps(c.Width, c.PixelSize) }
func (c *Config) Rows() int { return steps(c.Height, c.PixelSize) }

func steps(n, step int) int { return (n + step - 1) / step }

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("pixel size must be positive, got %d", c.PixelSize)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// loadConfig reads WIDTH, HEIGHT, PIXEL_SIZE and WORKERS; unset means default.
func loadConfig(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()
	for _, v := range []struct {
		key string
		dst *int
	}{
		{"WIDTH", &cfg.Width},
		{"HEIGHT", &cfg.Height},
		{"PIXEL_SIZE", &cfg.PixelSize},
		{"WORKERS", &cfg.Workers},
	} {
		s := strings.TrimSpace(getenv(v.key))
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.key, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%s must be > 0, got %d", v.key, n)
		}
		*v.dst = n
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config: size=(%d, %d), pixelSize=%d, workers=%d", cfg.Width, cfg.Height, cfg.PixelSize, cfg.Workers)
	return cfg, nil
}
