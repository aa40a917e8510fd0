package imagehash

import (
	"image"

	"github.com/disintegration/imaging"
)

// luminance resizes img to exactly size with a Lanczos-3 filter and returns the
// 8-bit luma of every pixel in row-major order. Luma is taken from the
// unpremultiplied colour channels, so alpha does not darken a pixel. Cells the
// codec could not produce (empty input) stay zero.
func luminance(img image.Image, size Size) []uint8 {
	out := make([]uint8, size.area())
	if img == nil {
		return out
	}
	resized := imaging.Resize(img, size.W, size.H, imaging.Lanczos)
	bounds := resized.Bounds()
	for y := 0; y < size.H && y < bounds.Dy(); y++ {
		row := resized.Pix[y*resized.Stride:]
		for x := 0; x < size.W && x < bounds.Dx(); x++ {
			px := row[x*4 : x*4+3]
			out[y*size.W+x] = luma(px[0], px[1], px[2])
		}
	}
	return out
}

// luma applies the same Rec. 601 weights as color.GrayModel to 8-bit
// channels.
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r)*0x101 + 38470*uint32(g)*0x101 + 7471*uint32(b)*0x101 + 1<<15) >> 24
	return uint8(y)
}
