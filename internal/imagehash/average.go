package imagehash

import (
	"image"

	"phashbench/internal/fingerprint"
)

// AverageHash thresholds each cell of a downsampled grayscale grid against the
// grid's mean luminance.
type AverageHash struct {
	ImageSize Size
}

// NewAverageHash returns the 8x8 (64-bit) default.
func NewAverageHash() AverageHash {
	return AverageHash{ImageSize: Size{W: 8, H: 8}}
}

// WithImageSize returns a copy sampling a w x h grid.
func (a AverageHash) WithImageSize(w, h int) AverageHash {
	a.ImageSize = clampSize(w, h)
	return a
}

// WithHashSize is an alias for WithImageSize; one cell produces one bit.
func (a AverageHash) WithHashSize(w, h int) AverageHash {
	return a.WithImageSize(w, h)
}

func (a AverageHash) Name() string { return NameAverage }

func (a AverageHash) Bits() int { return a.ImageSize.area() }

// Hash emits true for every cell strictly darker than the mean, so a cell equal
// to the mean emits false.
func (a AverageHash) Hash(img image.Image) fingerprint.Fingerprint {
	lum := luminance(img, a.ImageSize)

	var total float64
	for _, v := range lum {
		total += float64(v)
	}
	mean := total / float64(len(lum))

	bits := make([]bool, len(lum))
	for i, v := range lum {
		bits[i] = float64(v) < mean
	}
	return fingerprint.New(bits)
}

func (AverageHash) algorithm() {}
