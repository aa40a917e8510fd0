// Package ledger persists benchmark results in a local SQLite database.
//
// Each `phashbench run --record` appends one row per (modification,
// algorithm) pair under a shared run ID. The ledger is an append-only history
// read back newest first. Rows are not indexed by fingerprint.
package ledger
