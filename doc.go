// Package tekgameruntime is a Steam API interception runtime.
//
// It loads alongside a game process and wraps the Steam API library's
// initializer through the host's import linkage. Once the real library is
// up, it detects its exact build, intercepts the dispatch tables of its
// capability objects, and installs ownership and identity overrides driven
// by a per-title settings document.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	tek-game-runtime/
//	├── steamapi/       One-shot initialization wrapper: identity selection,
//	│                   acquisition, interception, the baseline override
//	│                   catalog, and the attach bootstrap
//	├── layout/         Per-build dispatch-table layouts for the six
//	│                   capability-object kinds, with the version ceiling
//	├── dispatch/       Function-pointer-table interceptor: owned tables,
//	│                   slot maps, patch and original-forwarding contracts
//	├── version/        Packed 64-bit library version resolution
//	├── image/          Loaded-image metadata: exports, version resources,
//	│                   static and deferred import descriptors
//	├── hook/           Import-linkage patching over the image model
//	├── settings/       Framed settings channel, JSON schema, persistence
//	├── titles/         Per-title extensions (plus a wazero-backed wasm
//	│                   extension host under titles/wasmext)
//	├── steamclient/    CM session: DLC metadata refresh, workshop jobs
//	└── errors/         Structured Phase/Kind error taxonomy
//
// # Quick Start
//
// Attach to a process and let the host trigger initialization through its
// own import table:
//
//	rt, err := steamapi.Attach(registry, settingsSource, nil)
//	if err != nil {
//		// settings unreadable or the title vetoed the attach
//	}
//	// the host's next SteamAPI_Init call runs rt.Init
//
// The cmd/tekgr tool inspects the layout catalog and settings files from
// the command line.
package tekgameruntime
