// Package image models loaded-image metadata: the exports, import linkage
// tables, and version-information resource of modules mapped into a process.
//
// The engine never touches a real binary through this package; it operates on
// whatever Module implementation the embedder provides. Memory is the
// in-process implementation used by the runtime and its tests. A Registry
// plays the role of the process module list: it resolves module handles by
// name and knows which image is the host executable.
//
// Exports and import-address-table slots hold raw function values. They are
// untyped at the image boundary; call sites assert them to the dispatch
// convention they expect.
package image
