// Package steamapi is the interception engine for the Steam API library.
//
// It wraps the library's initializer: when host code calls SteamAPI_Init
// through its import linkage, the runtime initializes the real library,
// detects its exact build from the version-information resource, acquires
// the six capability objects using the acquisition strategy that build
// expects, clones and repoints their dispatch tables, and installs a
// baseline catalog of ownership and identity overrides before the host sees
// any of them. Per-title extensions then refine the result.
//
// Dispatch entries follow a raw convention: each table slot holds an
// untyped function value whose concrete signature both sides of a call
// agree on. Overrides assert the signature at the call site; nothing here
// is modeled with Go interfaces, mirroring the foreign ABI boundary the
// real engine sits on.
//
// Initialization is one-shot: the first invocation's result is returned to
// every later caller without re-deriving any table.
package steamapi
