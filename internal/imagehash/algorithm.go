package imagehash

import (
	"fmt"
	"image"
	"sort"

	"phashbench/internal/errs"
	"phashbench/internal/fingerprint"
)

// Algorithm is the contract shared by every hash variant.
type Algorithm interface {
	// Name is the identifier used in configuration and output.
	Name() string
	// Bits is the fingerprint length produced by Hash for this configuration.
	Bits() int
	// Hash reduces img to a fingerprint of exactly Bits() bits.
	Hash(img image.Image) fingerprint.Fingerprint

	algorithm()
}

// Size is a width/height pair in pixels or cells.
type Size struct {
	W int
	H int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

func (s Size) area() int {
	return s.W * s.H
}

func clampSize(w, h int) Size {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Size{W: w, H: h}
}

const (
	NameAverage             = "ahash"
	NameDifference          = "dhash"
	NamePerception          = "phash"
	NameReferencePerception = "phash-ref"
)

var defaults = map[string]func() Algorithm{
	NameAverage:             func() Algorithm { return NewAverageHash() },
	NameDifference:          func() Algorithm { return NewDifferenceHash() },
	NamePerception:          func() Algorithm { return NewPerceptionHash() },
	NameReferencePerception: func() Algorithm { return NewReferencePerceptionHash() },
}

// Lookup returns the default configuration of the named algorithm.
func Lookup(name string) (Algorithm, error) {
	ctor, ok := defaults[name]
	if !ok {
		return nil, &UnknownAlgorithmError{Name: name}
	}
	return ctor(), nil
}

// Names lists every registered algorithm name in sorted order.
func Names() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line human description of a's configuration.
func Describe(a Algorithm) string {
	switch v := a.(type) {
	case AverageHash:
		return fmt.Sprintf("average hash over a %s Lanczos-3 grid", v.ImageSize)
	case DifferenceHash:
		return fmt.Sprintf("horizontal gradient hash over a %dx%d grid", v.HashSize.W+1, v.HashSize.H)
	case PerceptionHash:
		return fmt.Sprintf("DCT hash, %s low frequencies of a %s grid", v.HashSize, v.ImageSize)
	case ReferencePerceptionHash:
		return "DCT hash computed by goimagehash"
	default:
		panic(fmt.Sprintf("imagehash: unhandled algorithm %T", a))
	}
}

// UnknownAlgorithmError reports a lookup miss.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("%s %q", errs.ErrUnknownAlgorithm, e.Name)
}

// Is lets errors.Is match errs.ErrUnknownAlgorithm.
func (e *UnknownAlgorithmError) Is(target error) bool {
	return target == errs.ErrUnknownAlgorithm
}
