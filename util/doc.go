// Package util provides the filesystem building blocks for mirroring an image
// tree into a tree of JPEG copies.
//
// Key Components:
//
// Directory Walking:
//   - Walk yields every file below a root as a lazy iter.Seq2
//   - No sorting; order is whatever filepath.WalkDir produces
//
// Path Mapping:
//   - IsImage accepts .jpg, .jpeg and .png names, case-insensitively
//   - NormalizeName rewrites the extension to .jpg unless it already is one
//   - NewFileTask mirrors the relative path under the destination root
//   - MaterializeDir creates destination directories idempotently
//
// Counting:
//   - CountImages tallies accepted and skipped files per extension
//
// Locking:
//   - LockDestination keeps two runs from writing the same destination tree
package util
