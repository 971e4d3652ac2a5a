package render

import (
	"bytes"
	"image/png"
	"testing"

	"tensor-field/internal/core"
)

func TestFillFieldRGBA(t *testing.T) {
	cells := []uint8{0, 100, 255}
	tint := []uint8{0, 255, 0}
	buf := make([]byte, 4*len(cells))
	fillFieldRGBA(buf, cells, tint)

	want := []byte{
		0, 0, 0, 255,
		100, 100, 255, 255,
		255, 255, 255, 255,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillFieldRGBAIgnoresMismatchedTint(t *testing.T) {
	buf := make([]byte, 8)
	fillFieldRGBA(buf, []uint8{10, 20}, []uint8{255})
	if buf[2] != 10 || buf[6] != 20 {
		t.Fatalf("mismatched tint should be ignored, got %v", buf)
	}
}

func uniformSnapshot(w, h int, v uint8) Snapshot {
	cells := make([]uint8, w*h)
	for i := range cells {
		cells[i] = v
	}
	return Snapshot{Size: core.Size{W: w, H: h}, Cells: cells}
}

func TestImageScalesCells(t *testing.T) {
	s := uniformSnapshot(4, 3, 80)
	opts := DefaultExportOptions()
	opts.Scale = 3
	img, err := Image(s, opts)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(11, 8); got != Gray(80) {
		t.Fatalf("corner pixel = %v", got)
	}
}

func TestImageDrawsTrailAndMote(t *testing.T) {
	s := uniformSnapshot(20, 20, 0)
	s.Trail = []core.Point{{X: 2, Y: 10}, {X: 18, Y: 10}}
	s.Mote = core.Point{X: 10, Y: 4}
	s.HasMote = true

	opts := DefaultExportOptions()
	opts.Scale = 1
	opts.LineWidth = 2
	opts.MoteRadius = 2
	img, err := Image(s, opts)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.RGBAAt(10, 10); got.R == 0 {
		t.Fatalf("trail pixel not drawn: %v", got)
	}
	if got := img.RGBAAt(10, 4); got.R == 0 || got.G == 0 {
		t.Fatalf("mote pixel not drawn: %v", got)
	}
	if got := img.RGBAAt(10, 16); got != Gray(0) {
		t.Fatalf("background pixel changed: %v", got)
	}
}

func TestImageClipsShapesAtEdges(t *testing.T) {
	s := uniformSnapshot(10, 10, 50)
	s.Trail = []core.Point{{X: -5, Y: 5}, {X: 15, Y: 5}}
	s.Mote = core.Point{X: 0, Y: 0}
	s.HasMote = true
	if _, err := Image(s, DefaultExportOptions()); err != nil {
		t.Fatalf("Image: %v", err)
	}
}

func TestImageRejectsBadSnapshot(t *testing.T) {
	s := Snapshot{Size: core.Size{W: 3, H: 3}, Cells: make([]uint8, 4)}
	if _, err := Image(s, DefaultExportOptions()); err == nil {
		t.Fatal("expected error for mismatched cells")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, uniformSnapshot(5, 5, 200), DefaultExportOptions()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("bounds = %v", b)
	}
}
