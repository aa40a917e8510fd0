// Package main hosts the phashbench CLI entrypoint and command graph.
//
// The Cobra-based command tree decodes an input image, applies registered
// modifications, and prints perceptual hashes of each variant. It centralizes
// configuration resolution and logging setup so subcommands stay declarative;
// the hashing and modification engines live under internal/.
package main
