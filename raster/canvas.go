package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/vector"
)

// Canvas is a software drawing surface: an RGBA image plus a reusable
// path rasterizer. A canvas belongs to one goroutine; the renderer makes
// a fresh one per frame.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewCanvas allocates a canvas of the given pixel size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole canvas with one color.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// begin resets the shared rasterizer for a new path.
func (c *Canvas) begin() *vector.Rasterizer {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	return c.ras
}

// paint composites the accumulated path onto the image.
func (c *Canvas) paint(col color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// kappa is the cubic Bezier handle length that approximates a quarter
// circle.
const kappa = 0.5522847498

// circlePath appends a full circle subpath. reverse flips the winding so
// the circle cuts a hole out of an enclosing path.
func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	if reverse {
		r = -r
	}
	x, y := float32(cx), float32(cy)
	rr := float32(r)
	k := float32(kappa * r)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()
}

// FillCircle draws a solid disc.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	z := c.begin()
	circlePath(z, cx, cy, r, false)
	c.paint(col)
}

// StrokeCircle draws a ring of the given stroke width. The outline and
// its hole rasterize as one path, so translucent colors composite once.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	if r <= 0 || width <= 0 {
		return
	}
	inner := r - width/2
	z := c.begin()
	circlePath(z, cx, cy, r+width/2, false)
	if inner > 0 {
		circlePath(z, cx, cy, inner, true)
	}
	c.paint(col)
}

// capSegments is the polyline resolution of a round stroke cap.
const capSegments = 8

// StrokeLine draws a round-capped segment as a single capsule path.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	r := width / 2
	if r <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.FillCircle(x0, y0, r, col)
		return
	}
	base := math.Atan2(dy, dx)
	nx, ny := -dy/length*r, dx/length*r

	z := c.begin()
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	arcTo(z, x1, y1, r, base+math.Pi/2, base-math.Pi/2)
	z.LineTo(float32(x0-nx), float32(y0-ny))
	arcTo(z, x0, y0, r, base-math.Pi/2, base-3*math.Pi/2)
	z.ClosePath()
	c.paint(col)
}

// arcTo appends a polyline arc around (cx, cy) from angle a0 to a1,
// continuing the current subpath.
func arcTo(z *vector.Rasterizer, cx, cy, r, a0, a1 float64) {
	for i := 1; i <= capSegments; i++ {
		a := a0 + (a1-a0)*float64(i)/capSegments
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
}

// StrokePolyline strokes consecutive segments with round joins.
func (c *Canvas) StrokePolyline(pts [][2]float64, width float64, col color.Color) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		c.StrokeLine(pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], width, col)
	}
}

// FillPolygon fills a closed polygon.
func (c *Canvas) FillPolygon(pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	z := c.begin()
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
	c.paint(col)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.FillPolygon([][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, col)
}

// ParseColor reads a #rrggbb or #rrggbbaa hex color. Malformed input
// falls back to opaque white so a bad document stays visibly wrong
// instead of blank.
func ParseColor(s string) color.NRGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// withAlpha scales a color's alpha by an opacity in [0, 1].
func withAlpha(col color.NRGBA, opacity float64) color.NRGBA {
	if opacity >= 1 {
		return col
	}
	if opacity < 0 {
		opacity = 0
	}
	col.A = uint8(float64(col.A) * opacity)
	return col
}

// apply maps a point through an affine matrix in the engine's
// [a, b, c, d, tx, ty] layout.
func apply(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// mul composes two affines: result = parent * child.
func mul(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// scaleOf extracts the uniform scale factor of an affine built from
// rotations, uniform scales, and translations.
func scaleOf(m [6]float64) float64 {
	return math.Hypot(m[0], m[1])
}

func translation(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

func scaling(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}
