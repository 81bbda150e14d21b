// Package diff computes line-level edit scripts between two versions
// of a document and groups adjacent changes into hunks with a small
// context window. Hunks receive content-derived stable identifiers so
// that review comments anchored to them survive recomputation.
//
// The engine is pure: identical inputs always produce identical
// output, including hunk ids.
package diff
