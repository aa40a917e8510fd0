package modify

import (
	"image"
)

// Encoder persists an image to a path.
type Encoder interface {
	Save(img image.Image, path string) error
}

// Process resolves a modification by key, applies it to Image, and writes the
// result to SavePath.
type Process struct {
	Image            image.Image
	ModificationName string
	SavePath         string
}

// Run returns the applied modification so callers can report its self-name.
// Lookup misses surface as *UnknownModificationError; encoder errors are
// returned unchanged.
func (p Process) Run(reg *Registry, enc Encoder) (Modification, error) {
	m, err := reg.Resolve(p.ModificationName)
	if err != nil {
		return nil, err
	}
	if err := enc.Save(m.Apply(p.Image), p.SavePath); err != nil {
		return m, err
	}
	return m, nil
}
