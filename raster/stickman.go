package raster

import (
	"image/color"
	"math"

	"github.com/phanxgames/puppet"
)

// DrawStickman strokes every bone of a posed figure, the head circle,
// and an expression face. world maps figure space (hip origin, Y down)
// to canvas pixels; lineWidth is in figure units and scales with it.
func (c *Canvas) DrawStickman(fig *puppet.Figure, world [6]float64, lineWidth float64, col color.NRGBA, expression string) {
	s := scaleOf(world)
	lw := lineWidth * s

	for j := puppet.Joint(0); j < puppet.JointCount; j++ {
		if j == puppet.JointHead {
			continue
		}
		b := fig.Bone(j)
		x0, y0 := apply(world, b.Start.X, b.Start.Y)
		x1, y1 := apply(world, b.End.X, b.End.Y)
		c.StrokeLine(x0, y0, x1, y1, lw, col)
	}

	hc := fig.HeadCenter()
	cx, cy := apply(world, hc.X, hc.Y)
	r := fig.HeadRadius * s
	c.StrokeCircle(cx, cy, r, lw, col)
	c.drawFace(cx, cy, r, lw, col, expression)
}

// drawFace renders the expression inside the head circle. Faces stay
// axis-aligned; at stickman scale a tilted face reads as noise.
func (c *Canvas) drawFace(cx, cy, r, lw float64, col color.NRGBA, expression string) {
	if r < 4 {
		return
	}
	eyeY := cy - r*0.15
	eyeDX := r * 0.35
	eyeR := math.Max(lw*0.55, r*0.09)
	mouthY := cy + r*0.35

	dotEyes := func(scale float64) {
		c.FillCircle(cx-eyeDX, eyeY, eyeR*scale, col)
		c.FillCircle(cx+eyeDX, eyeY, eyeR*scale, col)
	}
	lineEyes := func() {
		half := r * 0.14
		c.StrokeLine(cx-eyeDX-half, eyeY, cx-eyeDX+half, eyeY, lw*0.8, col)
		c.StrokeLine(cx+eyeDX-half, eyeY, cx+eyeDX+half, eyeY, lw*0.8, col)
	}
	flatMouth := func(dx float64) {
		half := r * 0.28
		c.StrokeLine(cx+dx-half, mouthY, cx+dx+half, mouthY, lw*0.8, col)
	}

	switch expression {
	case "happy":
		dotEyes(1)
		c.mouthArc(cx, mouthY-r*0.08, r*0.45, r*0.25, lw*0.8, col)
	case "excited":
		dotEyes(1.4)
		c.mouthArc(cx, mouthY-r*0.1, r*0.5, r*0.35, lw, col)
	case "sad":
		dotEyes(1)
		c.mouthArc(cx, mouthY+r*0.12, r*0.4, -r*0.22, lw*0.8, col)
	case "surprised":
		dotEyes(1.4)
		c.StrokeCircle(cx, mouthY, r*0.16, lw*0.8, col)
	case "thinking":
		dotEyes(1)
		flatMouth(-r * 0.15)
		// one raised brow
		c.StrokeLine(cx+eyeDX-r*0.14, eyeY-r*0.3, cx+eyeDX+r*0.14, eyeY-r*0.34, lw*0.8, col)
	case "angry":
		dotEyes(1)
		c.StrokeLine(cx-eyeDX-r*0.16, eyeY-r*0.34, cx-eyeDX+r*0.12, eyeY-r*0.18, lw*0.8, col)
		c.StrokeLine(cx+eyeDX+r*0.16, eyeY-r*0.34, cx+eyeDX-r*0.12, eyeY-r*0.18, lw*0.8, col)
		c.mouthArc(cx, mouthY+r*0.08, r*0.38, -r*0.18, lw*0.8, col)
	case "focused":
		lineEyes()
		flatMouth(0)
	case "worried":
		dotEyes(1)
		c.StrokeLine(cx-eyeDX-r*0.14, eyeY-r*0.2, cx-eyeDX+r*0.14, eyeY-r*0.32, lw*0.8, col)
		c.StrokeLine(cx+eyeDX-r*0.14, eyeY-r*0.32, cx+eyeDX+r*0.14, eyeY-r*0.2, lw*0.8, col)
		c.mouthArc(cx, mouthY+r*0.06, r*0.34, -r*0.12, lw*0.8, col)
	default: // neutral and anything unrecognized
		dotEyes(1)
		flatMouth(0)
	}
}

// mouthArc strokes a parabolic mouth. Positive bow bends the middle
// downward (a smile in Y-down coordinates); negative bends it up.
func (c *Canvas) mouthArc(cx, y, halfW, bow, lw float64, col color.NRGBA) {
	const segs = 8
	pts := make([][2]float64, segs+1)
	for i := 0; i <= segs; i++ {
		t := float64(i)/float64(segs)*2 - 1
		pts[i] = [2]float64{cx + t*halfW, y + bow*(1-t*t)}
	}
	c.StrokePolyline(pts, lw, col)
}
