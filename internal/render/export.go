package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"tensor-field/internal/core"
)

// ExportOptions controls how a field and a trajectory are rasterised.
type ExportOptions struct {
	// Scale multiplies every grid cell into Scale×Scale pixels.
	Scale      int
	LineWidth  float64
	MoteRadius float64
	TrailColor color.RGBA
	MoteColor  color.RGBA
}

// DefaultExportOptions returns a red trail and a yellow mote at 2× scale.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Scale:      2,
		LineWidth:  1.5,
		MoteRadius: 4,
		TrailColor: color.RGBA{R: 230, G: 40, B: 40, A: 255},
		MoteColor:  color.RGBA{R: 255, G: 210, B: 0, A: 255},
	}
}

// Snapshot is the renderable state of a field and one agent.
type Snapshot struct {
	Size  core.Size
	Cells []uint8
	// Tint is optional; when set it must match Cells in length.
	Tint  []uint8
	Trail []core.Point
	// Mote marks the agent position when HasMote is set.
	Mote    core.Point
	HasMote bool
}

// Image rasterises s into a new RGBA image.
func Image(s Snapshot, opts ExportOptions) (*image.RGBA, error) {
	if s.Size.W <= 0 || s.Size.H <= 0 || len(s.Cells) != s.Size.W*s.Size.H {
		return nil, fmt.Errorf("render: %d cells for a %dx%d field", len(s.Cells), s.Size.W, s.Size.H)
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	base := image.NewRGBA(image.Rect(0, 0, s.Size.W, s.Size.H))
	fillFieldRGBA(base.Pix, s.Cells, s.Tint)

	out := base
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, s.Size.W*scale, s.Size.H*scale))
		for y := 0; y < s.Size.H; y++ {
			for x := 0; x < s.Size.W; x++ {
				cell := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
				draw.Draw(out, cell, image.NewUniform(base.RGBAAt(x, y)), image.Point{}, draw.Src)
			}
		}
	}

	fs := float64(scale)
	trail := image.NewUniform(opts.TrailColor)
	for i := 1; i < len(s.Trail); i++ {
		a, b := s.Trail[i-1], s.Trail[i]
		strokeSegment(out, trail, a.X*fs, a.Y*fs, b.X*fs, b.Y*fs, opts.LineWidth)
	}
	if s.HasMote {
		fillDisc(out, image.NewUniform(opts.MoteColor), s.Mote.X*fs, s.Mote.Y*fs, opts.MoteRadius)
	}
	return out, nil
}

// WritePNG encodes the rasterised snapshot as PNG.
func WritePNG(w io.Writer, s Snapshot, opts ExportOptions) error {
	img, err := Image(s, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rasterised snapshot to path.
func SavePNG(path string, s Snapshot, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := WritePNG(f, s, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// strokeSegment fills the quad of the given width around a-b. Each segment
// gets its own rasterizer pass so overlapping segments never cancel out.
func strokeSegment(dst draw.Image, src image.Image, ax, ay, bx, by, width float64) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	fillPolygon(dst, src, [][2]float64{
		{ax + nx, ay + ny},
		{bx + nx, by + ny},
		{bx - nx, by - ny},
		{ax - nx, ay - ny},
	})
}

func fillDisc(dst draw.Image, src image.Image, cx, cy, r float64) {
	if r <= 0 {
		return
	}
	const sides = 24
	pts := make([][2]float64, sides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / sides
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	fillPolygon(dst, src, pts)
}

// fillPolygon rasterises a closed polygon into the part of dst covering its
// bounding box. The rasterizer clips path segments outside that box.
func fillPolygon(dst draw.Image, src image.Image, pts [][2]float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	clip := box.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	z.MoveTo(float32(pts[0][0]-ox), float32(pts[0][1]-oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	z.ClosePath()
	z.DrawOp = draw.Over
	z.Draw(dst, clip, src, image.Point{})
}
