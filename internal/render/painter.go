//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FieldPainter uploads field intensities and the optional tint into a
// single RGBA image.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a grid of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	return &FieldPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads cells and tint, then draws the image scaled onto dst.
func (p *FieldPainter) Blit(dst *ebiten.Image, cells, tint []uint8, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	fillFieldRGBA(p.buf, cells, tint)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *FieldPainter) Size() (int, int) { return p.w, p.h }
