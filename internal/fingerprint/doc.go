// Package fingerprint holds the bit-vector value every perceptual hash produces.
//
// A Fingerprint is an ordered, immutable sequence of bits. Serialization packs
// the bits MSB-first into octets, right-padding the final partial octet with
// zeros, and renders those octets as lowercase hex. The packing order matches
// the convention used by the common perceptual-hash reference tools so hex
// strings stay comparable across implementations.
package fingerprint
