package imagehash

import (
	"image"
	"math"
	"sort"

	"github.com/corona10/goimagehash"

	"phashbench/internal/fingerprint"
)

// PerceptionHash thresholds the low-frequency DCT coefficients of a
// downsampled grayscale grid against their median.
type PerceptionHash struct {
	ImageSize Size
	HashSize  Size
}

// NewPerceptionHash returns the 32x32 grid / 8x8 coefficient (64-bit) default.
func NewPerceptionHash() PerceptionHash {
	return PerceptionHash{
		ImageSize: Size{W: 32, H: 32},
		HashSize:  Size{W: 8, H: 8},
	}
}

// WithImageSize returns a copy sampling a w x h grid before the transform.
func (p PerceptionHash) WithImageSize(w, h int) PerceptionHash {
	p.ImageSize = clampSize(w, h)
	p.HashSize = p.clampedHash()
	return p
}

// WithHashSize returns a copy keeping the top-left w x h coefficients.
func (p PerceptionHash) WithHashSize(w, h int) PerceptionHash {
	p.HashSize = clampSize(w, h)
	p.HashSize = p.clampedHash()
	return p
}

func (p PerceptionHash) clampedHash() Size {
	hs := p.HashSize
	if hs.W > p.ImageSize.W {
		hs.W = p.ImageSize.W
	}
	if hs.H > p.ImageSize.H {
		hs.H = p.ImageSize.H
	}
	return hs
}

func (p PerceptionHash) Name() string { return NamePerception }

func (p PerceptionHash) Bits() int { return p.clampedHash().area() }

// Hash emits true for every kept coefficient strictly above the median.
func (p PerceptionHash) Hash(img image.Image) fingerprint.Fingerprint {
	hs := p.clampedHash()
	lum := luminance(img, p.ImageSize)

	matrix := make([]float64, len(lum))
	for i, v := range lum {
		matrix[i] = float64(v)
	}
	coeffs := dct2D(matrix, p.ImageSize.W, p.ImageSize.H)

	block := make([]float64, 0, hs.area())
	for y := 0; y < hs.H; y++ {
		for x := 0; x < hs.W; x++ {
			block = append(block, coeffs[y*p.ImageSize.W+x])
		}
	}
	median := medianOf(block)

	bits := make([]bool, len(block))
	for i, v := range block {
		bits[i] = v > median
	}
	return fingerprint.New(bits)
}

func (PerceptionHash) algorithm() {}

// dct2D applies an unnormalised DCT-II along rows and then columns of a
// row-major w x h matrix.
func dct2D(matrix []float64, w, h int) []float64 {
	out := make([]float64, len(matrix))
	row := make([]float64, w)
	for y := 0; y < h; y++ {
		dct1D(matrix[y*w:(y+1)*w], row)
		copy(out[y*w:(y+1)*w], row)
	}

	col := make([]float64, h)
	res := make([]float64, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = out[y*w+x]
		}
		dct1D(col, res)
		for y := 0; y < h; y++ {
			out[y*w+x] = res[y]
		}
	}
	return out
}

func dct1D(in, out []float64) {
	n := len(in)
	for k := 0; k < n; k++ {
		var sum float64
		for i, v := range in {
			sum += v * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
		out[k] = sum
	}
}

func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// ReferencePerceptionHash delegates to goimagehash so the in-tree DCT hash can
// be benchmarked against a widely used implementation.
type ReferencePerceptionHash struct{}

// NewReferencePerceptionHash returns the only configuration goimagehash offers.
func NewReferencePerceptionHash() ReferencePerceptionHash {
	return ReferencePerceptionHash{}
}

func (ReferencePerceptionHash) Name() string { return NameReferencePerception }

func (ReferencePerceptionHash) Bits() int { return 64 }

// Hash returns an all-zero fingerprint when goimagehash rejects the image,
// which only happens for a nil or empty image.
func (r ReferencePerceptionHash) Hash(img image.Image) fingerprint.Fingerprint {
	if img == nil || img.Bounds().Empty() {
		return fingerprint.New(make([]bool, r.Bits()))
	}
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return fingerprint.New(make([]bool, r.Bits()))
	}
	return fingerprint.FromUint64(hash.GetHash(), r.Bits())
}

func (ReferencePerceptionHash) algorithm() {}
