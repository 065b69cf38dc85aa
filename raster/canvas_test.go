package raster

import (
	"image/color"
	"math"
	"testing"
)

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %g, want %g", name, got, want)
	}
}

// --- Colors ---

func TestParseColor(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#1a1a2e", color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}},
		{"1a1a2e", color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}},
		{"#FFD166", color.NRGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}},
		{"#ff000080", color.NRGBA{R: 0xff, A: 0x80}},
		{"", white},
		{"#fff", white},
		{"#1a1a2", white},
		{"#zzzzzz", white},
		{"not a color", white},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	base := color.NRGBA{R: 10, G: 20, B: 30, A: 200}
	if got := withAlpha(base, 1); got != base {
		t.Errorf("opacity 1 = %v, want %v", got, base)
	}
	if got := withAlpha(base, 2); got != base {
		t.Errorf("opacity past 1 = %v, want %v", got, base)
	}
	got := withAlpha(base, 0.5)
	if got.A != 100 {
		t.Errorf("half opacity alpha = %d, want 100", got.A)
	}
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("color channels changed: %v", got)
	}
	if got := withAlpha(base, -3); got.A != 0 {
		t.Errorf("negative opacity alpha = %d, want 0", got.A)
	}
}

// --- Canvas primitives ---

var (
	testBlack = color.NRGBA{A: 255}
	testWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestFillSetsEveryPixel(t *testing.T) {
	c := NewCanvas(8, 6)
	if w, h := c.Size(); w != 8 || h != 6 {
		t.Fatalf("Size = %dx%d, want 8x6", w, h)
	}
	c.Fill(color.NRGBA{R: 51, G: 102, B: 153, A: 255})
	img := c.Image()
	for _, pt := range [][2]int{{0, 0}, {7, 5}, {3, 2}} {
		got := img.RGBAAt(pt[0], pt[1])
		if got.R != 51 || got.G != 102 || got.B != 153 || got.A != 255 {
			t.Errorf("pixel %v = %v", pt, got)
		}
	}
}

func TestFillCircleCoverage(t *testing.T) {
	c := NewCanvas(50, 50)
	c.Fill(testBlack)
	c.FillCircle(25, 25, 10, testWhite)
	img := c.Image()
	if got := img.RGBAAt(25, 25); got.R < 250 {
		t.Errorf("center = %v, want white", got)
	}
	// 17px above the center, well outside r=10.
	if got := img.RGBAAt(25, 8); got.R > 5 {
		t.Errorf("outside = %v, want black", got)
	}
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	c := NewCanvas(60, 60)
	c.Fill(testBlack)
	c.StrokeCircle(30, 30, 15, 4, testWhite)
	img := c.Image()
	if got := img.RGBAAt(45, 30); got.R < 250 {
		t.Errorf("ring = %v, want white", got)
	}
	if got := img.RGBAAt(30, 30); got.R > 5 {
		t.Errorf("interior = %v, want black", got)
	}
	if got := img.RGBAAt(30, 8); got.R > 5 {
		t.Errorf("exterior = %v, want black", got)
	}
}

// A translucent ring must composite as one layer, not outer circle
// plus inner circle stacked.
func TestStrokeCircleCompositesOnce(t *testing.T) {
	c := NewCanvas(60, 60)
	c.Fill(testBlack)
	c.StrokeCircle(30, 30, 15, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	got := c.Image().RGBAAt(45, 30)
	if got.R < 120 || got.R > 136 {
		t.Errorf("ring = %v, want a single 50%% white layer (R near 128)", got)
	}
}

func TestStrokeLineCapsule(t *testing.T) {
	c := NewCanvas(50, 50)
	c.Fill(testBlack)
	c.StrokeLine(10, 25, 40, 25, 6, testWhite)
	img := c.Image()
	if got := img.RGBAAt(25, 25); got.R < 250 {
		t.Errorf("body = %v, want white", got)
	}
	// Round caps extend half a width past each endpoint.
	if got := img.RGBAAt(8, 25); got.R < 250 {
		t.Errorf("cap = %v, want white", got)
	}
	// 7px off axis with a 3px half width.
	if got := img.RGBAAt(25, 32); got.R > 5 {
		t.Errorf("off-axis = %v, want black", got)
	}
}

func TestStrokeLineZeroLengthIsDot(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Fill(testBlack)
	c.StrokeLine(10, 10, 10, 10, 8, testWhite)
	img := c.Image()
	if got := img.RGBAAt(10, 10); got.R < 250 {
		t.Errorf("dot = %v, want white", got)
	}
	if got := img.RGBAAt(10, 3); got.R > 5 {
		t.Errorf("outside dot = %v, want black", got)
	}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Fill(testBlack)
	c.FillRect(10, 10, 20, 12, color.NRGBA{G: 255, A: 255})
	img := c.Image()
	if got := img.RGBAAt(20, 15); got.G < 250 {
		t.Errorf("inside = %v, want green", got)
	}
	if got := img.RGBAAt(20, 25); got.G > 5 {
		t.Errorf("below = %v, want black", got)
	}
	if got := img.RGBAAt(35, 15); got.G > 5 {
		t.Errorf("right of = %v, want black", got)
	}
}

func TestStrokePolyline(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Fill(testBlack)
	c.StrokePolyline([][2]float64{{5, 35}, {20, 5}, {35, 35}}, 4, testWhite)
	img := c.Image()
	if got := img.RGBAAt(20, 6); got.R < 200 {
		t.Errorf("apex = %v, want white", got)
	}
	if got := img.RGBAAt(20, 30); got.R > 5 {
		t.Errorf("between legs = %v, want black", got)
	}
}

// --- Affine helpers ---

func TestAffineHelpers(t *testing.T) {
	m := mul(translation(10, 20), scaling(2))
	x, y := apply(m, 3, 4)
	assertNear(t, "x", x, 16)
	assertNear(t, "y", y, 28)
	assertNear(t, "scale", scaleOf(m), 2)

	// Parent applies after child: scale the translated point.
	m2 := mul(scaling(2), translation(10, 20))
	x2, y2 := apply(m2, 3, 4)
	assertNear(t, "x2", x2, 26)
	assertNear(t, "y2", y2, 48)

	ix, iy := apply(translation(0, 0), 7, -2)
	assertNear(t, "identity x", ix, 7)
	assertNear(t, "identity y", iy, -2)
}
