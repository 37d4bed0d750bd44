// Package layout is the catalog of historical dispatch-table layouts for the
// capability objects the target library exposes.
//
// For each of the six object kinds the catalog holds a literal, hand-audited,
// strictly-ordered list of (minimum-version-threshold, method-count,
// slot-map) entries, evaluated from the highest threshold downward. The first
// entry whose threshold is at or below the detected version is selected;
// below the lowest listed threshold the earliest layout applies. Versions
// above the catalog ceiling are unsupported: proceeding would risk writing
// past an owned table buffer or invoking an unknown slot.
//
// Slot maps translate stable logical method IDs to revision-specific table
// indices; methods a revision lacks resolve to dispatch.SlotAbsent.
package layout
