package render

import "image/color"

// fillFieldRGBA converts intensities into gray RGBA pixels in buf. Cells with
// a non-zero tint keep their red and green channels and get a saturated
// blue, so read paths show through as blue streaks.
func fillFieldRGBA(buf []byte, cells, tint []uint8) {
	tinted := len(tint) == len(cells)
	for i, v := range cells {
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 255
		if tinted && tint[i] != 0 {
			buf[base+2] = 255
		}
	}
}

// Gray returns the display colour of an intensity.
func Gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
