// Package bench runs the benchmark pipeline for one input image.
//
// For the unmodified image and then each requested modification, the runner
// applies the transform, optionally writes the modified image next to its
// siblings, and hashes the result with every requested algorithm. Results come
// back in a stable order: variants in request order (the original first), and
// algorithms in request order within each variant.
//
// The pipeline is synchronous and single-threaded; one run processes one
// image.
package bench
