package asciiray

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

type Category uint8

const (
	Reflected Category = iota // camera ray hit the sphere, floor seen in the mirror
	Direct                    // camera ray missed the sphere, floor seen directly
)

func (c Category) String() string {
	switch c {
	case Reflected:
		return "reflected"
	case Direct:
		return "direct"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

type PixelLog struct {
	Category   Category
	L, M       Real // screen coordinates
	Brightness Real
}

type PixelLogCache struct {
	mu     sync.Mutex
	pixels map[Category][]PixelLog
}

var cache = &PixelLogCache{
	pixels: make(map[Category][]PixelLog),
}

func resetPixelLog() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.pixels = make(map[Category][]PixelLog)
}

func logPixel(category Category, l, m, brightness Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.pixels[category] = append(cache.pixels[category], PixelLog{
		Category:   category,
		L:          l,
		M:          m,
		Brightness: brightness,
	})
}

// pixelStats prints, per category, how many pixels took that path,
// how many of them are lit and their mean brightness.
func pixelStats(w io.Writer) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cats := make([]Category, 0, len(cache.pixels))
	for k := range cache.pixels {
		cats = append(cats, k)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, k := range cats {
		v := cache.pixels[k]
		lit, sum := 0, 0.0
		for _, p := range v {
			if !isFinite(p.Brightness) {
				continue
			}
			if p.Brightness > 0 {
				lit++
			}
			sum += p.Brightness
		}
		fmt.Fprintf(w, "Pixel path %s: %d pixels, %d lit, mean brightness %.4f\n", k, len(v), lit, sum/Real(imax(len(v), 1)))
	}
}
