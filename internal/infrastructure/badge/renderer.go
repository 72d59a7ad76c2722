// Package badge rasterizes the unread-count badge.
package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/infrastructure/cache"
)

const (
	// Size is the edge of the rendered badge in pixels.
	Size = 64

	// supersample renders at a larger size and scales down for antialiasing.
	supersample = 4

	// Font sizes for one digit, two digits and the overflow label.
	fontSizeShort  = 40
	fontSizeMedium = 36
	fontSizeLong   = 30

	// baselineNudge moves the text down slightly for optical centering.
	baselineNudge = 2

	// cacheSize covers the counts a session usually walks through.
	cacheSize = 32
)

var (
	badgeRed   = color.RGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF}
	badgeWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Renderer draws a red disc with the label in white bold text and encodes
// it as PNG. Recent labels are cached.
type Renderer struct {
	font  *opentype.Font
	cache *cache.LRU[string, []byte]
}

var _ port.BadgeRenderer = (*Renderer)(nil)

// NewRenderer parses the embedded Go Bold font.
func NewRenderer() (*Renderer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse badge font: %w", err)
	}
	return &Renderer{font: f, cache: cache.NewLRU[string, []byte](cacheSize)}, nil
}

// Render returns the PNG for label.
func (r *Renderer) Render(label string) ([]byte, error) {
	if data, ok := r.cache.Get(label); ok {
		return data, nil
	}

	img, err := r.draw(label)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode badge: %w", err)
	}
	data := buf.Bytes()
	r.cache.Set(label, data)
	return data, nil
}

func (r *Renderer) draw(label string) (image.Image, error) {
	const big = Size * supersample

	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	fillCircle(canvas, big/2, big/2, big/2, badgeRed)

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(fontSizeFor(label) * supersample),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("badge font face: %w", err)
	}
	defer func() { _ = face.Close() }()

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(badgeWhite),
		Face: face,
	}
	width := d.MeasureString(label)
	capHeight := face.Metrics().CapHeight
	d.Dot = fixed.Point26_6{
		X: fixed.I(big/2) - width/2,
		Y: fixed.I(big/2) + capHeight/2 + fixed.I(baselineNudge*supersample),
	}
	d.DrawString(label)

	out := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out, nil
}

func fontSizeFor(label string) int {
	switch n := utf8.RuneCountInString(label); {
	case n <= 1:
		return fontSizeShort
	case n == 2:
		return fontSizeMedium
	default:
		return fontSizeLong
	}
}

func fillCircle(dst *image.RGBA, cx, cy, radius int, c color.RGBA) {
	r2 := radius * radius
	for y := cy - radius; y < cy+radius; y++ {
		for x := cx - radius; x < cx+radius; x++ {
			// Sample pixel centers so the disc is symmetric.
			dx, dy := 2*(x-cx)+1, 2*(y-cy)+1
			if dx*dx+dy*dy <= 4*r2 {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}
