package dispatch

import (
	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/errors"
)

// Descriptor is the interception state for one capability object: the owned
// patchable table, the captured original table, and the slot map for the
// detected revision.
//
// The owned buffer is allocated once at the kind's historical maximum and
// never reallocated or resized. Unused trailing slots are never read. The
// original table stays valid for the process lifetime and is the only path
// through which an override may invoke default behavior.
type Descriptor struct {
	name       string
	numMethods int
	object     *Object
	orig       []Entry
	table      []Entry
	slots      []int
}

// Construct clones numMethods entries of the object's current table into an
// owned buffer of capacity entries, captures the pre-copy table as the
// original, and repoints the object at the owned buffer. slots maps logical
// method IDs to table indices, with SlotAbsent for methods the detected
// revision lacks; it is retained by reference and must not be mutated.
//
// Runs on the initializing thread before the object is reachable elsewhere;
// after it returns, the object's table pointer refers exclusively to the
// owned buffer.
func Construct(name string, object *Object, numMethods, capacity int, slots []int) (*Descriptor, error) {
	if object == nil {
		return nil, errors.New(errors.PhaseIntercept, errors.KindInvalidData).
			Object(name).
			Detail("nil capability object").
			Build()
	}
	if numMethods > capacity {
		return nil, errors.OutOfBounds(errors.PhaseIntercept, name, numMethods, capacity)
	}
	orig := object.VTable()
	if len(orig) < numMethods {
		return nil, errors.New(errors.PhaseIntercept, errors.KindInvalidData).
			Object(name).
			Detail("live table has %d entries, revision expects %d", len(orig), numMethods).
			Build()
	}

	d := &Descriptor{
		name:       name,
		numMethods: numMethods,
		object:     object,
		orig:       orig,
		table:      make([]Entry, capacity),
		slots:      slots,
	}
	copy(d.table[:numMethods], orig)
	object.SetVTable(d.table)

	Logger().Debug("dispatch table intercepted",
		zap.String("object", name),
		zap.Int("methods", numMethods),
		zap.Int("capacity", capacity))
	return d, nil
}

// Name returns the capability-object kind name.
func (d *Descriptor) Name() string {
	return d.name
}

// NumMethods returns the method count resolved for the detected revision.
func (d *Descriptor) NumMethods() int {
	return d.numMethods
}

// Object returns the intercepted instance.
func (d *Descriptor) Object() *Object {
	return d.object
}

// Slot resolves a logical method ID to its table index for the detected
// revision, or SlotAbsent.
func (d *Descriptor) Slot(id int) int {
	if id < 0 || id >= len(d.slots) {
		return SlotAbsent
	}
	return d.slots[id]
}

// Patch installs an override at the logical ID's slot in the owned table.
// The override's signature must match the original slot's calling
// convention. IDs that resolve to SlotAbsent are a no-op; the owned buffer
// is never written outside its allocated size.
func (d *Descriptor) Patch(id int, override Entry) {
	slot := d.Slot(id)
	if slot == SlotAbsent || slot >= d.numMethods {
		return
	}
	d.table[slot] = override
	Logger().Debug("override installed",
		zap.String("object", d.name),
		zap.Int("logical_id", id),
		zap.Int("slot", slot))
}

// Original returns the table entry the logical ID's slot held before
// interception, captured at construction time. Overrides must forward
// default behavior through this value, never through the live owned table.
// Returns nil for IDs absent from the detected revision.
func (d *Descriptor) Original(id int) Entry {
	slot := d.Slot(id)
	if slot == SlotAbsent || slot >= d.numMethods {
		return nil
	}
	return d.orig[slot]
}
