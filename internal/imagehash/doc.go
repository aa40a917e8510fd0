// Package imagehash implements the perceptual hash algorithms benchmarked by
// phashbench.
//
// Every algorithm is a small value-typed configuration record satisfying the
// sealed Algorithm interface: construct it with its New* function, adjust it
// with the With* methods (which return copies), and call Hash on a decoded
// image to obtain a fingerprint.Fingerprint. Hashing is pure and never fails;
// decode and resize failures belong to the image codec.
//
// The variant set is closed. Adding an algorithm means adding a type here,
// registering its name in the lookup table, and extending Describe; the tests
// walk every registered name through Describe so a missing arm panics.
package imagehash
