// Package hook rewrites import linkage slots in a loaded image's metadata.
//
// A host binary that links against the target library reaches the library's
// exports through its own import tables: an array of static per-library
// import descriptors, plus a deferred-load descriptor array for libraries
// the host only loads on first use. Each descriptor carries a name table and
// an address table walked in lockstep; the address slot at a matched name's
// position is the patch target. Overwriting that slot redirects every
// subsequent host call through the replacement, with no modification to
// either binary on disk.
//
// The walk is a generic utility parameterized by (library, symbol,
// replacement); it knows nothing about any particular target library. A
// symbol present in neither table is an accepted limitation of the
// mechanism, reported as a non-fatal miss that callers discard.
package hook
