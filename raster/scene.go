package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/phanxgames/puppet"
	"github.com/phanxgames/puppet/schema"
)

// Renderer produces frames from a scene document. Construction resolves
// every catalog name once; after that any frame can be rendered in any
// order, including concurrently.
//
// The document should have passed [schema.ApplyDefaults] and
// [schema.Validate]; the renderer still reports resolution failures
// instead of panicking.
type Renderer struct {
	doc    *schema.Document
	fps    int
	width  int
	height int

	fonts  *fontSet
	accent color.NRGBA
	scenes []sceneScript
}

// sceneScript is one scene with its names resolved.
type sceneScript struct {
	scene   *schema.Scene
	camera  puppet.DirectionPreset
	bg      color.NRGBA
	objects []objectScript
}

// objectScript is one object with its element window, resolved stickman
// setup, and prebuilt QR image.
type objectScript struct {
	obj      *schema.Object
	element  puppet.Element
	stickman puppet.StickmanConfig
	qr       image.Image
	color    color.NRGBA
}

// NewRenderer resolves the document against the engine catalogs.
func NewRenderer(doc *schema.Document) (*Renderer, error) {
	r := &Renderer{
		doc:    doc,
		fps:    doc.Meta.FPS,
		width:  doc.Meta.Width,
		height: doc.Meta.Height,
	}
	if r.fps <= 0 {
		r.fps = schema.DefaultFPS
	}
	if r.width <= 0 || r.height <= 0 {
		r.width, r.height = schema.DefaultWidth, schema.DefaultHeight
	}

	fonts, err := newFontSet()
	if err != nil {
		return nil, err
	}
	r.fonts = fonts

	palette, ok := schema.ThemePalettes[doc.Meta.Theme]
	if !ok {
		palette = schema.ThemePalettes[schema.DefaultTheme]
	}
	r.accent = ParseColor(palette.Accent)

	for i := range doc.Scenes {
		sc := &doc.Scenes[i]
		script, err := r.buildScene(sc, palette)
		if err != nil {
			return nil, err
		}
		r.scenes = append(r.scenes, script)
	}
	return r, nil
}

func (r *Renderer) buildScene(sc *schema.Scene, palette schema.ThemePalette) (sceneScript, error) {
	name := sc.Camera
	if name == "" {
		name = "static"
	}
	cam, err := puppet.GetDirection(name)
	if err != nil {
		return sceneScript{}, fmt.Errorf("raster: scene %q: %w", sc.ID, err)
	}

	bg := sc.Background
	if bg == "" {
		bg = palette.Primary
	}
	script := sceneScript{scene: sc, camera: cam, bg: ParseColor(bg)}

	for j := range sc.Objects {
		o := &sc.Objects[j]
		scr := objectScript{
			obj:     o,
			element: o.Element(sc, r.fps),
			color:   ParseColor(o.Props.Color),
		}
		switch o.Type {
		case schema.KindStickman:
			cfg, err := o.StickmanConfig(sc)
			if err != nil {
				return sceneScript{}, fmt.Errorf("raster: %w", err)
			}
			scr.stickman = cfg
		case schema.KindQR:
			code, err := qrcode.New(o.Props.URL, qrcode.Medium)
			if err != nil {
				return sceneScript{}, fmt.Errorf("raster: scene %q object %q: qr: %w", sc.ID, o.ID, err)
			}
			px := int(o.Props.Size)
			if px <= 0 {
				px = 256
			}
			scr.qr = code.Image(px)
		}
		script.objects = append(script.objects, scr)
	}
	return script, nil
}

// FPS returns the document frame rate.
func (r *Renderer) FPS() int {
	return r.fps
}

// Size returns the output dimensions in pixels.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// FrameCount returns the total number of frames in the document.
func (r *Renderer) FrameCount() int {
	return puppet.FrameAtMs(r.doc.DurationMs(), r.fps)
}

// RenderFrame draws the given absolute frame onto a fresh canvas. The
// same frame number always yields identical pixels; frames outside the
// timeline come back black.
func (r *Renderer) RenderFrame(frame int) (*image.RGBA, error) {
	c := NewCanvas(r.width, r.height)
	ms := frame * 1000 / r.fps
	idx := r.doc.SceneAt(ms)
	if idx < 0 {
		c.Fill(color.NRGBA{A: 255})
		return c.Image(), nil
	}
	if err := r.renderScene(c, idx, frame); err != nil {
		return nil, err
	}
	if err := r.applyTransition(c, idx, frame); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// renderScene draws one scene's background, camera, and objects for the
// absolute frame.
func (r *Renderer) renderScene(c *Canvas, idx, frame int) error {
	s := &r.scenes[idx]
	c.Fill(s.bg)

	ms := frame * 1000 / r.fps
	cam := s.camera.At(s.scene.Progress(ms))
	// Preset X/Y are offsets from the canvas center; world space is
	// canvas pixels.
	cam.X += float64(r.width) / 2
	cam.Y += float64(r.height) / 2
	view := cam.ViewAffine(float64(r.width), float64(r.height))

	for i := range s.objects {
		if err := r.drawObject(c, &s.objects[i], frame, view); err != nil {
			return err
		}
	}
	return nil
}

// applyTransition blends the previous scene over the start of the
// current one. The incoming scene owns its transition window.
func (r *Renderer) applyTransition(c *Canvas, idx, frame int) error {
	tr := r.scenes[idx].scene.Transition
	if tr.Type == "" || tr.Type == "cut" || tr.DurationMs <= 0 {
		return nil
	}
	ms := frame * 1000 / r.fps
	t := float64(ms-r.scenes[idx].scene.StartMs) / float64(tr.DurationMs)
	if t >= 1 {
		return nil
	}
	if t < 0 {
		t = 0
	}

	needPrev := false
	switch tr.Type {
	case "crossfade", "slideLeft", "slideRight", "slideUp", "slideDown", "wipeLeft", "wipeRight":
		needPrev = true
	case "fadeToBlack":
		needPrev = t < 0.5
	}

	// The outgoing scene freezes on its final frame.
	var prevImg *image.RGBA
	if needPrev {
		prev := NewCanvas(r.width, r.height)
		if idx > 0 {
			prevFrame := puppet.FrameAtMs(r.scenes[idx-1].scene.EndMs, r.fps) - 1
			if err := r.renderScene(prev, idx-1, prevFrame); err != nil {
				return err
			}
		} else {
			prev.Fill(color.NRGBA{A: 255})
		}
		prevImg = prev.img
	}

	switch tr.Type {
	case "crossfade":
		mixImages(c.img, prevImg, t)
	case "fadeFromBlack":
		darken(c.img, t)
	case "fadeToBlack":
		if t < 0.5 {
			copy(c.img.Pix, prevImg.Pix)
			darken(c.img, 1-2*t)
		} else {
			darken(c.img, 2*t-1)
		}
	case "slideLeft", "slideRight", "slideUp", "slideDown":
		slideCompose(c.img, prevImg, tr.Type, puppet.EaseInOutCubic(t))
	case "wipeLeft", "wipeRight":
		wipeCompose(c.img, prevImg, tr.Type, t)
	}
	return nil
}

// mixImages blends dst = dst*t + prev*(1-t) in place.
func mixImages(dst, prev *image.RGBA, t float64) {
	w := uint32(t * 256)
	if w > 256 {
		w = 256
	}
	for i := range dst.Pix {
		dst.Pix[i] = uint8((uint32(dst.Pix[i])*w + uint32(prev.Pix[i])*(256-w)) >> 8)
	}
}

// darken scales the color channels toward black, leaving alpha alone.
func darken(img *image.RGBA, f float64) {
	if f < 0 {
		f = 0
	}
	w := uint32(f * 256)
	if w > 256 {
		w = 256
	}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(uint32(img.Pix[i]) * w >> 8)
		img.Pix[i+1] = uint8(uint32(img.Pix[i+1]) * w >> 8)
		img.Pix[i+2] = uint8(uint32(img.Pix[i+2]) * w >> 8)
	}
}

// slideCompose pushes both scenes in the named direction; the new scene
// trails in as the old one leaves.
func slideCompose(cur, prev *image.RGBA, dir string, e float64) {
	b := cur.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(b)

	var px, py, cx, cy int
	switch dir {
	case "slideLeft":
		s := int(e * float64(w))
		px, cx = -s, w-s
	case "slideRight":
		s := int(e * float64(w))
		px, cx = s, s-w
	case "slideUp":
		s := int(e * float64(h))
		py, cy = -s, h-s
	case "slideDown":
		s := int(e * float64(h))
		py, cy = s, s-h
	}
	draw.Draw(out, image.Rect(px, py, px+w, py+h), prev, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(cx, cy, cx+w, cy+h), cur, image.Point{}, draw.Src)
	copy(cur.Pix, out.Pix)
}

// wipeCompose reveals the new scene behind a hard edge sweeping across
// the frame.
func wipeCompose(cur, prev *image.RGBA, dir string, t float64) {
	b := cur.Bounds()
	w, h := b.Dx(), b.Dy()
	switch dir {
	case "wipeLeft":
		// edge sweeps right to left; the old scene remains on its left
		xb := int(float64(w) * (1 - t))
		draw.Draw(cur, image.Rect(0, 0, xb, h), prev, image.Point{}, draw.Src)
	case "wipeRight":
		xb := int(float64(w) * t)
		draw.Draw(cur, image.Rect(xb, 0, w, h), prev, image.Point{X: xb}, draw.Src)
	}
}
