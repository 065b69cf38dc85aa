package raster

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/phanxgames/puppet"
	"github.com/phanxgames/puppet/schema"
)

// drawObject evaluates one object at the frame and dispatches on its
// kind. Invisible elements cost one phase evaluation and nothing else.
func (r *Renderer) drawObject(c *Canvas, scr *objectScript, frame int, view [6]float64) error {
	st := scr.element.Evaluate(frame, r.fps)
	if !st.Visible || st.Opacity <= 0 {
		return nil
	}
	o := scr.obj
	world := mul(view, mul(translation(o.Position.X, o.Position.Y), st.Transform.Affine()))
	col := withAlpha(scr.color, st.Opacity)

	switch o.Type {
	case schema.KindStickman:
		fr := puppet.ResolveStickman(&scr.stickman, &scr.element, frame, r.fps)
		c.DrawStickman(&fr.Figure, world, o.Props.LineWidth, col, o.Props.Expression)
	case schema.KindText:
		return r.drawText(c, o, st, world, col)
	case schema.KindCounter:
		return r.drawCounter(c, o, st, world, col)
	case schema.KindIcon:
		drawIcon(c, o, world, col)
	case schema.KindShape:
		drawShape(c, o, st, world, col)
	case schema.KindQR:
		drawQR(c, scr, st, world)
	}
	return nil
}

// --- Text ---

func (r *Renderer) drawText(c *Canvas, o *schema.Object, st puppet.FrameState, world [6]float64, col color.NRGBA) error {
	content := revealText(o.Props.Content, st.DrawProgress)
	if content == "" {
		return nil
	}
	scale := scaleOf(world)
	x, y := apply(world, 0, 0)
	bold := o.Props.FontWeight == "bold" || o.Props.Style == "title" || o.Props.Style == "number"
	face, err := r.fonts.face(float64(o.Props.FontSize)*scale, bold)
	if err != nil {
		return err
	}
	maxWidth := o.Props.MaxWidth * scale

	if o.Props.Style == "highlight_box" {
		lines := wrapText(face, content, maxWidth)
		blockW := 0.0
		for _, line := range lines {
			if w := textWidth(face, line); w > blockW {
				blockW = w
			}
		}
		blockH := fixed26_6(face.Metrics().Height) * float64(len(lines))
		pad := float64(o.Props.FontSize) * scale * 0.4
		boxW, boxH := blockW+2*pad, blockH+2*pad
		boxX := lineAnchorX(x, boxW, o.Props.Align) // box hugs the text anchor
		if o.Props.Align == "left" {
			boxX -= pad
		}
		if o.Props.Align == "right" {
			boxX += pad
		}
		box := withAlpha(r.accent, st.Opacity)
		c.FillRect(boxX, y-boxH/2, boxW, boxH, box)
	}

	c.DrawTextBlock(face, content, x, y, maxWidth, o.Props.Align, image.NewUniform(col))
	return nil
}

// revealText cuts content to the typewriter progress, whole runes at a
// time.
func revealText(content string, progress float64) string {
	if progress >= 1 {
		return content
	}
	if progress <= 0 {
		return ""
	}
	runes := []rune(content)
	return string(runes[:int(progress*float64(len(runes)))])
}

// --- Counter ---

// counterCountMs is how long a counter takes to sweep from its start to
// its end value, timed from the element's first frame.
const counterCountMs = 1500

func counterValue(from, to int, elapsedMs float64) int {
	t := puppet.Clamp01(elapsedMs / counterCountMs)
	return from + int(math.Round(float64(to-from)*puppet.EaseInOutCubic(t)))
}

func formatCounter(v int, format string) string {
	switch format {
	case "percent":
		return strconv.Itoa(v) + "%"
	case "plain":
		return strconv.Itoa(v)
	default: // number
		return groupDigits(v)
	}
}

// groupDigits renders an integer with comma separators.
func groupDigits(v int) string {
	s := strconv.Itoa(v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func (r *Renderer) drawCounter(c *Canvas, o *schema.Object, st puppet.FrameState, world [6]float64, col color.NRGBA) error {
	scale := scaleOf(world)
	x, y := apply(world, 0, 0)
	face, err := r.fonts.face(float64(o.Props.FontSize)*scale, true)
	if err != nil {
		return err
	}
	text := formatCounter(counterValue(o.Props.From, o.Props.To, st.ElapsedMs), o.Props.Format)
	c.DrawTextBlock(face, text, x, y, 0, o.Props.Align, image.NewUniform(col))
	return nil
}

// --- Icons ---

// drawIcon renders a glyph authored in unit space (extent roughly ±1,
// Y down) scaled to the icon size.
func drawIcon(c *Canvas, o *schema.Object, world [6]float64, col color.NRGBA) {
	m := mul(world, scaling(o.Props.Size/2))
	lw := 0.14 * scaleOf(m)

	switch o.Props.Name {
	case "check":
		c.StrokePolyline(mapPts(m, [][2]float64{{-0.55, 0.05}, {-0.15, 0.45}, {0.6, -0.4}}), lw*1.3, col)
	case "cross":
		x0, y0 := apply(m, -0.45, -0.45)
		x1, y1 := apply(m, 0.45, 0.45)
		c.StrokeLine(x0, y0, x1, y1, lw*1.3, col)
		x0, y0 = apply(m, -0.45, 0.45)
		x1, y1 = apply(m, 0.45, -0.45)
		c.StrokeLine(x0, y0, x1, y1, lw*1.3, col)
	case "star":
		c.FillPolygon(mapPts(m, starPoints(0.95, 0.38)), col)
	case "heart":
		c.FillPolygon(mapPts(m, heartPoints()), col)
	case "warning":
		tri := [][2]float64{{0, -0.8}, {-0.85, 0.65}, {0.85, 0.65}, {0, -0.8}}
		c.StrokePolyline(mapPts(m, tri), lw, col)
		x0, y0 := apply(m, 0, -0.38)
		x1, y1 := apply(m, 0, 0.18)
		c.StrokeLine(x0, y0, x1, y1, lw, col)
		dx, dy := apply(m, 0, 0.42)
		c.FillCircle(dx, dy, lw*0.7, col)
	case "question":
		c.StrokePolyline(mapPts(m, questionPoints()), lw, col)
		dx, dy := apply(m, 0, 0.62)
		c.FillCircle(dx, dy, lw*0.7, col)
	case "gear":
		drawGear(c, m, col)
	default: // lightbulb
		cx, cy := apply(m, 0, -0.12)
		c.StrokeCircle(cx, cy, 0.5*scaleOf(m), lw, col)
		x0, y0 := apply(m, -0.14, 0.36)
		x1, y1 := apply(m, -0.14, 0.52)
		c.StrokeLine(x0, y0, x1, y1, lw*0.8, col)
		x0, y0 = apply(m, 0.14, 0.36)
		x1, y1 = apply(m, 0.14, 0.52)
		c.StrokeLine(x0, y0, x1, y1, lw*0.8, col)
		bx, by := apply(m, -0.24, 0.52)
		c.FillRect(bx, by, 0.48*scaleOf(m), 0.16*scaleOf(m), col)
	}
}

// mapPts transforms unit-space points to canvas pixels.
func mapPts(m [6]float64, pts [][2]float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		x, y := apply(m, p[0], p[1])
		out[i] = [2]float64{x, y}
	}
	return out
}

func starPoints(outer, inner float64) [][2]float64 {
	pts := make([][2]float64, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

func heartPoints() [][2]float64 {
	const n = 24
	pts := make([][2]float64, n)
	for i := range pts {
		t := float64(i) / n * 2 * math.Pi
		s := math.Sin(t)
		// classic heart curve, normalized and flipped for Y-down
		x := 16 * s * s * s / 17
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) / 17
		pts[i] = [2]float64{x, y + 0.15}
	}
	return pts
}

func questionPoints() [][2]float64 {
	var pts [][2]float64
	// hook: most of a circle over the top, then a stem toward the dot
	for a := -180.0; a <= 60; a += 24 {
		rad := a * math.Pi / 180
		pts = append(pts, [2]float64{0.38 * math.Cos(rad), -0.28 + 0.38*math.Sin(rad)})
	}
	pts = append(pts, [2]float64{0, 0.3})
	return pts
}

// drawGear fills a toothed wheel with a hub hole in one pass so
// translucent icons composite once.
func drawGear(c *Canvas, m [6]float64, col color.NRGBA) {
	const teeth = 8
	outer, inner := 0.95, 0.68
	total := teeth * 4
	z := c.begin()
	for i := 0; i < total; i++ {
		r := outer
		if i%4 >= 2 {
			r = inner
		}
		a := 2 * math.Pi * float64(i) / float64(total)
		x, y := apply(m, r*math.Cos(a), r*math.Sin(a))
		if i == 0 {
			z.MoveTo(float32(x), float32(y))
		} else {
			z.LineTo(float32(x), float32(y))
		}
	}
	z.ClosePath()
	hx, hy := apply(m, 0, 0)
	circlePath(z, hx, hy, 0.28*scaleOf(m), true)
	c.paint(col)
}

// --- Shapes ---

func drawShape(c *Canvas, o *schema.Object, st puppet.FrameState, world [6]float64, col color.NRGBA) {
	size := o.Props.Size
	lw := o.Props.StrokeWidth * scaleOf(world)
	p := puppet.Clamp01(st.DrawProgress)
	if p <= 0 {
		return
	}

	switch o.Props.Shape {
	case "rect":
		w, h := size, size*0.62
		peri := [][2]float64{
			{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}, {-w / 2, -h / 2},
		}
		c.StrokePolyline(mapPts(world, partialPolyline(peri, p)), lw, col)
		if o.Props.Fill && p >= 1 {
			c.FillPolygon(mapPts(world, peri[:4]), withAlpha(col, 0.25))
		}
	case "circle":
		c.StrokePolyline(mapPts(world, arcPoints(size/2, p)), lw, col)
		if o.Props.Fill && p >= 1 {
			cx, cy := apply(world, 0, 0)
			c.FillCircle(cx, cy, size/2*scaleOf(world), withAlpha(col, 0.25))
		}
	case "underline":
		line := [][2]float64{{-size / 2, 0}, {-size/2 + size*p, 0}}
		c.StrokePolyline(mapPts(world, line), lw*2, col)
	case "arrow":
		line := [][2]float64{{-size / 2, 0}, {-size/2 + size*p, 0}}
		c.StrokePolyline(mapPts(world, line), lw, col)
		if p >= 0.85 {
			head := size * 0.16
			tipX := -size/2 + size*p
			c.StrokePolyline(mapPts(world, [][2]float64{
				{tipX - head, -head * 0.8}, {tipX, 0}, {tipX - head, head * 0.8},
			}), lw, col)
		}
	default: // line
		line := [][2]float64{{-size / 2, 0}, {-size/2 + size*p, 0}}
		c.StrokePolyline(mapPts(world, line), lw, col)
	}
}

// partialPolyline returns the leading fraction p of a polyline by arc
// length, interpolating the final point.
func partialPolyline(pts [][2]float64, p float64) [][2]float64 {
	if p >= 1 || len(pts) < 2 {
		return pts
	}
	total := 0.0
	for i := 0; i+1 < len(pts); i++ {
		total += math.Hypot(pts[i+1][0]-pts[i][0], pts[i+1][1]-pts[i][1])
	}
	budget := total * p
	out := [][2]float64{pts[0]}
	for i := 0; i+1 < len(pts); i++ {
		seg := math.Hypot(pts[i+1][0]-pts[i][0], pts[i+1][1]-pts[i][1])
		if seg <= 0 {
			continue
		}
		if budget >= seg {
			out = append(out, pts[i+1])
			budget -= seg
			if budget <= 0 {
				break
			}
			continue
		}
		t := budget / seg
		out = append(out, [2]float64{
			pts[i][0] + (pts[i+1][0]-pts[i][0])*t,
			pts[i][1] + (pts[i+1][1]-pts[i][1])*t,
		})
		break
	}
	return out
}

// arcPoints samples a circle of radius r from the top, sweeping the
// fraction p of a full turn.
func arcPoints(r, p float64) [][2]float64 {
	const full = 48
	n := int(math.Ceil(full * p))
	if n < 1 {
		n = 1
	}
	pts := make([][2]float64, n+1)
	for i := 0; i <= n; i++ {
		a := -math.Pi/2 + 2*math.Pi*p*float64(i)/float64(n)
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

// --- QR ---

// drawQR scales the prebuilt code image to the effect size. QR modules
// stay axis-aligned; rotation would break scanners anyway.
func drawQR(c *Canvas, scr *objectScript, st puppet.FrameState, world [6]float64) {
	if scr.qr == nil {
		return
	}
	size := scr.obj.Props.Size * scaleOf(world)
	if size < 1 {
		return
	}
	cx, cy := apply(world, 0, 0)
	half := int(size / 2)
	dr := image.Rect(int(cx)-half, int(cy)-half, int(cx)+half, int(cy)+half)

	var opts *xdraw.Options
	if st.Opacity < 1 {
		a := uint8(st.Opacity * 255)
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha{A: a})}
	}
	xdraw.ApproxBiLinear.Scale(c.img, dr, scr.qr, scr.qr.Bounds(), xdraw.Over, opts)
}
