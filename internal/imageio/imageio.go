// Package imageio decodes and encodes images on behalf of the hash and
// modification engines.
//
// Formats are those supported by github.com/disintegration/imaging (JPEG,
// PNG, GIF, BMP, TIFF) plus WebP decoding from golang.org/x/image. Every
// failure is tagged with errs.ErrImage and names the offending path.
package imageio

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"phashbench/internal/errs"
)

// Codec is the file-backed image codec. The zero value is ready to use.
type Codec struct {
	// AutoOrient applies EXIF orientation when decoding JPEG files.
	AutoOrient bool
}

// New returns a codec that honours EXIF orientation.
func New() Codec {
	return Codec{AutoOrient: true}
}

// Open decodes the image stored at path.
func (c Codec) Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(c.AutoOrient))
	if err != nil {
		return nil, errs.Wrap(errs.ErrImage, "decode", path, err)
	}
	return img, nil
}

// Decode reads an image from r; name labels errors.
func (c Codec) Decode(r io.Reader, name string) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(c.AutoOrient))
	if err != nil {
		return nil, errs.Wrap(errs.ErrImage, "decode", name, err)
	}
	return img, nil
}

// Save encodes img to path, choosing the format from the extension and
// creating the parent directory.
func (c Codec) Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return errs.Wrap(errs.ErrImage, "encode", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.ErrImage, "encode", path, fmt.Errorf("create output directory: %w", err))
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return errs.Wrap(errs.ErrImage, "encode", path, err)
	}
	return nil
}

// DerivedPath names the output for input modified by selfName inside dir,
// e.g. photo.jpg + rotate90 -> dir/photo-rotate90.jpg. Inputs whose extension
// cannot be encoded fall back to PNG.
func DerivedPath(dir, input, selfName string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if _, err := imaging.FormatFromExtension(ext); err != nil || ext == "" {
		ext = ".png"
	}
	return filepath.Join(dir, stem+"-"+selfName+ext)
}
