package asciiray

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Run renders the scene to out using settings from the environment,
// then appends the wall-clock render time.
func Run(out io.Writer) error {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return RunConfig(context.Background(), out, cfg)
}

func RunConfig(ctx context.Context, out io.Writer, cfg *Config) error {
	scene := DefaultScene()
	if Debug {
		resetPixelLog()
	}

	start := time.Now()
	if err := Render(ctx, out, scene, cfg); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	elapsed := time.Since(start)
	DebugLog("Frame %dx%d (step %d), time: %s", cfg.Width, cfg.Height, cfg.PixelSize, elapsed)

	if _, err := fmt.Fprintf(out, TimingFmt, elapsed.Seconds()); err != nil {
		return fmt.Errorf("write timing: %w", err)
	}

	if Debug && DiagOut != nil {
		pixelStats(DiagOut)
	}
	return nil
}
