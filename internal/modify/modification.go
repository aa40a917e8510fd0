package modify

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Modification is a pure image-to-image transform. The set of variants is
// closed to this package.
type Modification interface {
	// Name is the variant's self-reported identifier.
	Name() string
	// Apply returns a new image; img is never modified.
	Apply(img image.Image) image.Image

	modification()
}

const defaultSigma = 0.9

// Blur applies a Gaussian blur with standard deviation Sigma.
type Blur struct {
	Sigma float64
}

// NewBlur returns Blur with sigma 0.9.
func NewBlur() Blur {
	return Blur{Sigma: defaultSigma}
}

// WithSigma returns a copy using sigma; negative values are treated as zero.
func (b Blur) WithSigma(sigma float64) Blur {
	if sigma < 0 {
		sigma = 0
	}
	b.Sigma = sigma
	return b
}

func (Blur) Name() string { return "blur" }

// Apply returns an unblurred copy when Sigma is zero.
func (b Blur) Apply(img image.Image) image.Image {
	return imaging.Blur(img, b.Sigma)
}

func (b Blur) String() string {
	return fmt.Sprintf("sigma=%g", b.Sigma)
}

func (Blur) modification() {}

// Angle is a clockwise quarter-turn rotation.
type Angle int

const (
	Rotate90  Angle = 90
	Rotate180 Angle = 180
	Rotate270 Angle = 270
)

// ParseAngle accepts 90, 180, or 270 degrees.
func ParseAngle(degrees int) (Angle, error) {
	switch Angle(degrees) {
	case Rotate90, Rotate180, Rotate270:
		return Angle(degrees), nil
	default:
		return 0, fmt.Errorf("unsupported rotation angle %d (want 90, 180 or 270)", degrees)
	}
}

// Rotate turns the image clockwise by Angle.
type Rotate struct {
	Angle Angle
}

// NewRotate returns Rotate by 90 degrees.
func NewRotate() Rotate {
	return Rotate{Angle: Rotate90}
}

// WithAngle returns a copy rotating by angle. An angle outside 90, 180 and
// 270 leaves the receiver's angle in place.
func (r Rotate) WithAngle(angle Angle) Rotate {
	if _, err := ParseAngle(int(angle)); err != nil {
		return r
	}
	r.Angle = angle
	return r
}

// Valid reports whether Angle is one of the supported quarter turns.
func (r Rotate) Valid() error {
	_, err := ParseAngle(int(r.Angle))
	return err
}

func (r Rotate) Name() string {
	return fmt.Sprintf("rotate%d", int(r.Angle))
}

// Apply maps clockwise angles onto imaging's counter-clockwise rotations. A
// Rotate with an unsupported angle returns an unmodified copy.
func (r Rotate) Apply(img image.Image) image.Image {
	switch r.Angle {
	case Rotate90:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate90(img)
	default:
		return imaging.Clone(img)
	}
}

func (r Rotate) String() string {
	return fmt.Sprintf("angle=%d", int(r.Angle))
}

func (Rotate) modification() {}

// Describe renders the parameters of m for listings.
func Describe(m Modification) string {
	switch v := m.(type) {
	case Blur:
		return v.String()
	case Rotate:
		return v.String()
	default:
		panic(fmt.Sprintf("modify: unhandled modification %T", m))
	}
}
