// Package wasmext runs per-title extensions compiled to WebAssembly.
//
// Titles without native callbacks in the titles package can ship a wasm
// module instead: at the post-initialization extension point the module's
// exported post_init function runs inside a wazero sandbox. Host functions
// under the "tek_gr" namespace expose the same patch contract native
// extensions use — install a canned constant-returning override at a
// (capability object, logical method id) pair — plus read-only access to
// the runtime's settings and captured identity.
//
// The guest sees no filesystem, network, or clock; everything it can affect
// goes through the host functions.
package wasmext
