// Package titles hosts per-title extensions: small pieces of behavior that
// only apply to one distributed title, keyed by store and application id.
//
// A title may register any subset of four callbacks: settings load and save
// post-processing, an early process-attach check that can veto the runtime
// before it starts, and a post-initialization callback that installs extra
// or replacement overrides on the already-built descriptor set using the
// same patch contract the baseline catalog uses.
//
// Built-in titles live in per-id files in this package. Titles without
// native callbacks can ship a sandboxed wasm extension instead; see
// titles/wasmext.
package titles
