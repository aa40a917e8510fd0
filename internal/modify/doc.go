// Package modify implements the image perturbations applied before hashing
// and the registry that resolves them by name.
//
// Two naming layers exist on purpose. The registry key is the coarse name a
// user writes in configuration ("rotate"); Modification.Name is the variant's
// precise self-name ("rotate90") used in logs and output filenames.
package modify
