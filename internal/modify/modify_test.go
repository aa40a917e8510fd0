package modify_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phashbench/internal/errs"
	"phashbench/internal/modify"
)

func patterned(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: uint8(x*y + 7), A: 255})
		}
	}
	return img
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 0.9, modify.NewBlur().Sigma)
	assert.Equal(t, modify.Rotate90, modify.NewRotate().Angle)
}

func TestSelfNames(t *testing.T) {
	assert.Equal(t, "blur", modify.NewBlur().Name())
	assert.Equal(t, "rotate90", modify.NewRotate().Name())
	assert.Equal(t, "rotate180", modify.NewRotate().WithAngle(modify.Rotate180).Name())
	assert.Equal(t, "rotate270", modify.NewRotate().WithAngle(modify.Rotate270).Name())
}

func TestRegistryResolveBuiltins(t *testing.T) {
	reg := modify.DefaultRegistry()

	blur, err := reg.Resolve("blur")
	require.NoError(t, err)
	assert.Equal(t, modify.Blur{Sigma: 0.9}, blur)

	rotate, err := reg.Resolve("rotate")
	require.NoError(t, err)
	assert.Equal(t, modify.Rotate{Angle: modify.Rotate90}, rotate)
	assert.Equal(t, "rotate90", rotate.Name())

	assert.Equal(t, []string{"blur", "rotate"}, reg.Names())
}

func TestRegistryResolveUnknown(t *testing.T) {
	reg := modify.DefaultRegistry()

	for _, name := range []string{"unknown", "Blur", "rotate180", ""} {
		_, err := reg.Resolve(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, errs.ErrUnknownModification))

		var unknown *modify.UnknownModificationError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, name, unknown.Name)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := modify.WithBuiltins(modify.Entry{Key: "blur", Modification: modify.NewBlur().WithSigma(3)})
	assert.Error(t, err)

	_, err = modify.NewRegistry(modify.Entry{Key: " ", Modification: modify.NewBlur()})
	assert.Error(t, err)

	_, err = modify.NewRegistry(modify.Entry{Key: "nil"})
	assert.Error(t, err)
}

func TestRegistryExtraEntries(t *testing.T) {
	reg, err := modify.WithBuiltins(
		modify.Entry{Key: "flip", Modification: modify.NewRotate().WithAngle(modify.Rotate180)},
		modify.Entry{Key: "heavy-blur", Modification: modify.NewBlur().WithSigma(4)},
	)
	require.NoError(t, err)

	m, err := reg.Resolve("flip")
	require.NoError(t, err)
	assert.Equal(t, "rotate180", m.Name())
	assert.True(t, reg.Has("heavy-blur"))
	assert.Len(t, reg.Entries(), 4)
}

func TestEveryBuiltinApplies(t *testing.T) {
	reg := modify.DefaultRegistry()
	img := patterned(7, 5)
	for _, entry := range reg.Entries() {
		out := entry.Modification.Apply(img)
		require.NotNil(t, out, entry.Key)
		assert.False(t, out.Bounds().Empty(), entry.Key)
		assert.NotEmpty(t, modify.Describe(entry.Modification))
	}
}

func TestRotateIsClockwise(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	marker := color.NRGBA{R: 255, A: 255}
	img.SetNRGBA(0, 0, marker)

	out := toNRGBA(modify.NewRotate().Apply(img))
	require.Equal(t, 2, out.Bounds().Dx())
	require.Equal(t, 3, out.Bounds().Dy())
	assert.Equal(t, marker, out.NRGBAAt(1, 0), "top-left moves to top-right on a clockwise quarter turn")
}

func TestRotateRoundTrip(t *testing.T) {
	img := patterned(6, 4)
	r90 := modify.NewRotate()
	r180 := r90.WithAngle(modify.Rotate180)
	r270 := r90.WithAngle(modify.Rotate270)

	assert.Equal(t, img.Pix, toNRGBA(r90.Apply(r270.Apply(img))).Pix)
	assert.Equal(t, img.Pix, toNRGBA(r270.Apply(r90.Apply(img))).Pix)
	assert.Equal(t, img.Pix, toNRGBA(r180.Apply(r180.Apply(img))).Pix)
}

func TestBlurZeroSigmaIsIdentity(t *testing.T) {
	img := patterned(9, 9)
	out := toNRGBA(modify.NewBlur().WithSigma(0).Apply(img))
	assert.Equal(t, img.Pix, out.Pix)
	assert.Equal(t, 0.0, modify.NewBlur().WithSigma(-1).Sigma)
}

func TestBlurSmoothsEdges(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	out := toNRGBA(modify.NewBlur().WithSigma(2).Apply(img))
	edge := out.NRGBAAt(4, 5).R
	assert.Greater(t, edge, uint8(0))
	assert.Less(t, edge, uint8(255))
}

func TestParseAngle(t *testing.T) {
	for _, deg := range []int{90, 180, 270} {
		a, err := modify.ParseAngle(deg)
		require.NoError(t, err)
		assert.Equal(t, deg, int(a))
	}
	_, err := modify.ParseAngle(45)
	assert.Error(t, err)
}

func TestWithAngleIgnoresUnsupportedAngles(t *testing.T) {
	r := modify.NewRotate().WithAngle(modify.Angle(45))
	assert.Equal(t, modify.Rotate90, r.Angle)
	assert.Equal(t, "rotate90", r.Name())

	r = modify.NewRotate().WithAngle(modify.Rotate270).WithAngle(modify.Angle(0))
	assert.Equal(t, modify.Rotate270, r.Angle)
}

func TestRegistryRejectsInvalidRotate(t *testing.T) {
	_, err := modify.NewRegistry(modify.Entry{Key: "tilt", Modification: modify.Rotate{Angle: 45}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tilt")

	_, err = modify.NewRegistry(modify.Entry{Key: "zero", Modification: modify.Rotate{}})
	require.Error(t, err)

	_, err = modify.WithBuiltins(modify.Entry{Key: "tilt", Modification: modify.NewRotate().WithAngle(45)})
	require.NoError(t, err)
}

func TestRotateZeroValueApplyIsCopy(t *testing.T) {
	img := patterned(4, 2)
	var r modify.Rotate
	require.Error(t, r.Valid())

	out := toNRGBA(r.Apply(img))
	assert.Equal(t, img.Bounds().Size(), out.Bounds().Size())
	assert.Equal(t, img.Pix, out.Pix)
}

type recordingEncoder struct {
	path string
	img  image.Image
	err  error
}

func (r *recordingEncoder) Save(img image.Image, path string) error {
	r.img = img
	r.path = path
	return r.err
}

func TestProcessRun(t *testing.T) {
	enc := &recordingEncoder{}
	p := modify.Process{Image: patterned(4, 2), ModificationName: "rotate", SavePath: "out.png"}

	m, err := p.Run(modify.DefaultRegistry(), enc)
	require.NoError(t, err)
	assert.Equal(t, "rotate90", m.Name())
	assert.Equal(t, "out.png", enc.path)
	assert.Equal(t, 2, enc.img.Bounds().Dx())

	_, err = modify.Process{Image: patterned(4, 2), ModificationName: "nope"}.Run(modify.DefaultRegistry(), enc)
	assert.True(t, errors.Is(err, errs.ErrUnknownModification))

	failing := &recordingEncoder{err: errs.Wrap(errs.ErrImage, "encode", "out.png", errors.New("disk full"))}
	_, err = p.Run(modify.DefaultRegistry(), failing)
	assert.True(t, errors.Is(err, errs.ErrImage))
}
