package field

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"tensor-field/internal/core"
)

func nan() float64 { return math.NaN() }

func gradientField(t *testing.T, opts BuildOptions) *Field {
	t.Helper()
	values := make([]float64, 5*4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			values[y*5+x] = float64(x*40 + y*10)
		}
	}
	f, err := FromGrid(values, 5, 4, opts)
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	return f
}

func TestQuadrangulateIntegralMatchesGet(t *testing.T) {
	f := gradientField(t, DefaultBuildOptions())
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			want, err := f.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", x, y, err)
			}
			got, err := f.Quadrangulate(core.Point{X: float64(x), Y: float64(y)})
			if err != nil {
				t.Fatalf("Quadrangulate(%d,%d): %v", x, y, err)
			}
			if got != float64(want) {
				t.Fatalf("Quadrangulate(%d,%d) = %f, want %d", x, y, got, want)
			}
		}
	}
}

func TestNeighbourWeightsSumToOne(t *testing.T) {
	points := []core.Point{
		{X: 0.5, Y: 0.5},
		{X: 1.1, Y: 2.9},
		{X: 3.999, Y: 0.001},
		{X: 2, Y: 1.25},
		{X: 0.75, Y: 3},
	}
	for _, weighting := range []Weighting{WeightingProportional, WeightingInverse} {
		f := gradientField(t, BuildOptions{Nearest: 3, Weighting: weighting})
		for _, p := range points {
			_, w := f.neighbourWeights(p)
			sum := w[0] + w[1] + w[2] + w[3]
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("%s weights at %+v sum to %.12f", weighting, p, sum)
			}
		}
	}
}

func TestQuadrangulateProportionalFavoursFarNeighbours(t *testing.T) {
	values := []float64{0, 0, 0, 200}
	f, err := FromGrid(values, 2, 2, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	p := core.Point{X: 0.25, Y: 0.25}
	_, w := f.neighbourWeights(p)
	if !(w[3] > w[0]) {
		t.Fatalf("expected far corner to outweigh near corner, got %v", w)
	}
	got, err := f.Quadrangulate(p)
	if err != nil {
		t.Fatalf("Quadrangulate: %v", err)
	}
	want := 200 * w[3]
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %f, want %f", got, want)
	}

	inv, err := FromGrid(values, 2, 2, BuildOptions{Nearest: 3, Weighting: WeightingInverse})
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	_, wi := inv.neighbourWeights(p)
	if !(wi[0] > wi[3]) {
		t.Fatalf("expected near corner to dominate inverse weights, got %v", wi)
	}
}

func TestQuadrangulateMidpointIsMean(t *testing.T) {
	f, err := FromGrid([]float64{10, 20, 30, 40}, 2, 2, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	got, err := f.Quadrangulate(core.Point{X: 0.5, Y: 0.5})
	if err != nil {
		t.Fatalf("Quadrangulate: %v", err)
	}
	if math.Abs(got-25) > 1e-9 {
		t.Fatalf("got %f, want 25", got)
	}
}

func TestGetClampsCoordinateWise(t *testing.T) {
	f := gradientField(t, DefaultBuildOptions())
	// x past the right edge must stay on row 1, not alias into row 2
	got, err := f.Get(7, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want, _ := f.Get(4, 1)
	if got != want {
		t.Fatalf("Get(7,1) = %d, want %d (clamped to (4,1))", got, want)
	}
	got, _ = f.Get(-3, -3)
	if want, _ := f.Get(0, 0); got != want {
		t.Fatalf("Get(-3,-3) = %d, want %d", got, want)
	}
}

func TestGetRejectsOutOfBounds(t *testing.T) {
	f := gradientField(t, BuildOptions{Nearest: 3, Bounds: BoundsReject})
	if _, err := f.Get(5, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := f.Quadrangulate(core.Point{X: 3.5, Y: 3.5}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds from neighbour, got %v", err)
	}
	if _, err := f.Quadrangulate(core.Point{X: 1e300, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds for huge coordinate, got %v", err)
	}
	if _, err := f.Get(4, 3); err != nil {
		t.Fatalf("in-bounds lookup failed: %v", err)
	}
}

func TestQuadrangulateRejectsNonFinite(t *testing.T) {
	f := gradientField(t, DefaultBuildOptions())
	before := append([]uint8(nil), f.Cells()...)
	for _, p := range []core.Point{{X: nan(), Y: 1}, {X: 1, Y: math.Inf(1)}} {
		if _, err := f.Quadrangulate(p); !errors.Is(err, ErrInvalidPoint) {
			t.Fatalf("expected ErrInvalidPoint for %+v, got %v", p, err)
		}
	}
	for i, v := range f.Cells() {
		if v != before[i] {
			t.Fatal("failed query must not modify the field")
		}
	}
}

func TestTintRecordsReadsWithoutTouchingIntensity(t *testing.T) {
	plain := gradientField(t, DefaultBuildOptions())
	if plain.Tint() != nil {
		t.Fatal("tint should be nil when disabled")
	}

	f := gradientField(t, BuildOptions{Nearest: 3, Tint: true})
	before := append([]uint8(nil), f.Cells()...)
	if _, err := f.Quadrangulate(core.Point{X: 1.5, Y: 2.5}); err != nil {
		t.Fatalf("Quadrangulate: %v", err)
	}
	tint := f.Tint()
	for _, c := range [][2]int{{1, 2}, {2, 2}, {1, 3}, {2, 3}} {
		if tint[c[1]*5+c[0]] != 255 {
			t.Fatalf("expected neighbour %v to be tinted", c)
		}
	}
	if tint[0] != 0 {
		t.Fatal("unread cell should not be tinted")
	}
	for i, v := range f.Cells() {
		if v != before[i] {
			t.Fatalf("tinting altered intensity at %d", i)
		}
	}
	f.ClearTint()
	for i, v := range f.Tint() {
		if v != 0 {
			t.Fatalf("ClearTint left cell %d set", i)
		}
	}
}

func TestParseModes(t *testing.T) {
	if b, err := ParseBounds("Reject"); err != nil || b != BoundsReject {
		t.Fatalf("ParseBounds(Reject) = %v, %v", b, err)
	}
	if b, err := ParseBounds(""); err != nil || b != BoundsClamp {
		t.Fatalf("ParseBounds(\"\") = %v, %v", b, err)
	}
	if _, err := ParseBounds("wrap"); err == nil {
		t.Fatal("expected error for unknown bounds mode")
	}
	if w, err := ParseWeighting("inverse"); err != nil || w != WeightingInverse {
		t.Fatalf("ParseWeighting(inverse) = %v, %v", w, err)
	}
	if _, err := ParseWeighting("bilinear"); err == nil {
		t.Fatal("expected error for unknown weighting")
	}
}

func TestLoadImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.RGBA{R: 200, A: 255})
	path := filepath.Join(t.TempDir(), "field.png")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(out, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out.Close()

	f, err := LoadImage(path, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := f.Size(); got.W != 3 || got.H != 2 {
		t.Fatalf("size = %+v", got)
	}
	if v, _ := f.Get(2, 1); v != 200 {
		t.Fatalf("Get(2,1) = %d, want 200", v)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"), DefaultBuildOptions()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
