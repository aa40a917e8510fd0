package imagehash

import (
	"image"

	"phashbench/internal/fingerprint"
)

// DifferenceHash compares horizontally adjacent cells of a grid one column
// wider than the hash.
type DifferenceHash struct {
	HashSize Size
}

// NewDifferenceHash returns the 8x8 (64-bit) default.
func NewDifferenceHash() DifferenceHash {
	return DifferenceHash{HashSize: Size{W: 8, H: 8}}
}

// WithHashSize returns a copy producing a w x h bit grid.
func (d DifferenceHash) WithHashSize(w, h int) DifferenceHash {
	d.HashSize = clampSize(w, h)
	return d
}

func (d DifferenceHash) Name() string { return NameDifference }

func (d DifferenceHash) Bits() int { return d.HashSize.area() }

// Hash emits true where a cell is darker than its right neighbour.
func (d DifferenceHash) Hash(img image.Image) fingerprint.Fingerprint {
	grid := Size{W: d.HashSize.W + 1, H: d.HashSize.H}
	lum := luminance(img, grid)

	bits := make([]bool, 0, d.Bits())
	for y := 0; y < grid.H; y++ {
		row := lum[y*grid.W : (y+1)*grid.W]
		for x := 0; x < d.HashSize.W; x++ {
			bits = append(bits, row[x] < row[x+1])
		}
	}
	return fingerprint.New(bits)
}

func (DifferenceHash) algorithm() {}
