// Package dispatch owns cloned, patchable dispatch tables for capability
// objects exposed by the target library.
//
// A dispatch table is an explicit, ABI-shaped structure: a flat array of raw
// function values addressed by index, plus a slot map translating stable
// logical method IDs to revision-specific indices. It is deliberately not
// modeled with Go interfaces; interception happens at a foreign binary
// boundary, outside this module's own type system.
//
// A Descriptor clones an object's live table into an owned buffer sized to
// the object kind's historical maximum, captures the untouched original
// table, and repoints the object at the owned buffer. Patch installs an
// override at a logical ID's slot; IDs absent from the current revision
// resolve to SlotAbsent and patching them is a no-op. Overrides forward to
// default behavior exclusively through the captured original table. There is
// no uninstall: descriptors persist for the life of the process.
//
// Construction and patching run synchronously on the initializing thread,
// strictly before the object becomes reachable by other code; no locking is
// performed. Overrides that touch shared mutable state outside the table are
// responsible for their own synchronization.
package dispatch
