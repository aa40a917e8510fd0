// Package preflight provides readiness checks for the directories phashbench
// writes to.
//
// These checks run in two contexts:
//   - `phashbench run --out` and `--record` call CheckWritableDir before any
//     image is hashed, so a bad output path fails fast.
//   - `phashbench config validate` calls RunAll to report the state of the
//     configured directories.
package preflight
