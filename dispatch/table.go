package dispatch

// Entry is one dispatch-table slot: a raw function value whose first
// parameter is the receiving object. Untyped at the table boundary; call
// sites assert the slot's own calling convention.
type Entry = any

// SlotAbsent is the sentinel slot-map value meaning the logical method does
// not exist in the detected library revision.
const SlotAbsent = -1

// Object is a capability object produced by the target library: an instance
// handle paired with its dispatch-table pointer. The engine is the only
// party permitted to repoint the table.
type Object struct {
	vtable []Entry
}

// NewObject creates a capability object backed by the given table.
func NewObject(vtable []Entry) *Object {
	return &Object{vtable: vtable}
}

// VTable returns the object's current dispatch table.
func (o *Object) VTable() []Entry {
	return o.vtable
}

// SetVTable repoints the object at a new dispatch table.
func (o *Object) SetVTable(vtable []Entry) {
	o.vtable = vtable
}

// Entry reads the table entry at the given slot through the object's
// current table pointer, the way host code dispatches a virtual method.
// Out-of-range slots read as nil.
func (o *Object) Entry(slot int) Entry {
	if slot < 0 || slot >= len(o.vtable) {
		return nil
	}
	return o.vtable[slot]
}
