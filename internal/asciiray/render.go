package asciiray

import (
	"bufio"
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// Render draws one frame of scene into w: a glyph and a space per sample,
// a newline per row. Rows may be shaded concurrently but are written in order.
func Render(ctx context.Context, w io.Writer, scene Scene, cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	rows := make([][]byte, cfg.Rows())

	if cfg.Workers == 1 {
		for r := range rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[r] = renderRow(scene, cfg, r*cfg.PixelSize)
		}
	} else {
		DebugLogOnce("Rendering %d rows with %d workers", len(rows), cfg.Workers)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Workers)
		for r := range rows {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				// each goroutine owns rows[r]
				rows[r] = renderRow(scene, cfg, r*cfg.PixelSize)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// renderRow shades pixel row y, screen coordinates centred on the image.
func renderRow(scene Scene, cfg *Config, y int) []byte {
	row := make([]byte, 0, 2*cfg.Cols()+1)
	m := Real(y)/Real(cfg.Height) - 0.5
	for x := 0; x < cfg.Width; x += cfg.PixelSize {
		l := Real(x)/Real(cfg.Width) - 0.5
		row = append(row, glyphFor(GlyphScale*scene.Shade(l, m)), ' ')
	}
	return append(row, '\n')
}
