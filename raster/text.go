package raster

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontSet caches opentype faces for the two bundled weights. Face
// creation is the expensive step; lookups after the first render of a
// given size are map hits behind a mutex.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	sizePx int
	bold   bool
}

func newFontSet() (*fontSet, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse bold font: %w", err)
	}
	return &fontSet{regular: reg, bold: bld, faces: make(map[faceKey]font.Face)}, nil
}

// face returns a cached face for the pixel size, clamped to a sane range
// so camera zoom cannot request degenerate sizes.
func (fs *fontSet) face(sizePx float64, bold bool) (font.Face, error) {
	px := int(sizePx + 0.5)
	if px < 4 {
		px = 4
	}
	if px > 512 {
		px = 512
	}
	key := faceKey{sizePx: px, bold: bold}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}
	src := fs.regular
	if bold {
		src = fs.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: face %dpx: %w", px, err)
	}
	fs.faces[key] = f
	return f, nil
}

// textWidth measures a string in pixels.
func textWidth(face font.Face, s string) float64 {
	return fixed26_6(font.MeasureString(face, s))
}

func fixed26_6(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// wrapText splits content into lines that fit maxWidth, breaking on
// spaces and honoring explicit newlines. A single word wider than the
// limit stays on its own line rather than being cut.
func wrapText(face font.Face, content string, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(content, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if maxWidth > 0 && textWidth(face, candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// lineAnchorX returns the pen start for one line under an alignment.
func lineAnchorX(x, width float64, align string) float64 {
	switch align {
	case "left":
		return x
	case "right":
		return x - width
	default: // center
		return x - width/2
	}
}

// DrawTextBlock draws wrapped lines centered vertically on (x, y). Align
// controls each line's horizontal anchor relative to x.
func (c *Canvas) DrawTextBlock(face font.Face, content string, x, y, maxWidth float64, align string, col image.Image) {
	lines := wrapText(face, content, maxWidth)
	m := face.Metrics()
	lineH := fixed26_6(m.Height)
	ascent := fixed26_6(m.Ascent)
	totalH := lineH * float64(len(lines))

	top := y - totalH/2
	d := font.Drawer{Dst: c.img, Src: col, Face: face}
	for i, line := range lines {
		if line == "" {
			continue
		}
		w := textWidth(face, line)
		px := lineAnchorX(x, w, align)
		py := top + ascent + lineH*float64(i)
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(py * 64)}
		d.DrawString(line)
	}
}
