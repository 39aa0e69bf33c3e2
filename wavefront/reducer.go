package wavefront

// cacheLine pads reducer slots so neighbouring workers never share a line.
const cacheLine = 64

type maxSlot struct {
	v int32
	_ [cacheLine - 4]byte
}

// Reducer folds tile maxima into the global maximum.
//
// During a wavefront each worker w owns Slot w exclusively and raises it with
// Observe; after the join the owner of the Reducer calls Fold. Max is a
// commutative, associative operation, so no ordering among workers matters and
// no lock is needed.
type Reducer struct {
	slots  []maxSlot
	global int32
}

// NewReducer returns a Reducer with one slot per worker.
func NewReducer(workers int) *Reducer {
	return &Reducer{slots: make([]maxSlot, max(workers, 1))}
}

// Observe raises slot w to v. Only worker w may call it during a region.
func (r *Reducer) Observe(w int, v int32) {
	if v > r.slots[w].v {
		r.slots[w].v = v
	}
}

// Fold combines all slots into the global maximum, resets the slots for the
// next region and returns the region maximum. Call only after the join.
func (r *Reducer) Fold() int32 {
	var region int32
	for k := range r.slots {
		if r.slots[k].v > region {
			region = r.slots[k].v
		}
		r.slots[k].v = 0
	}
	if region > r.global {
		r.global = region
	}

	return region
}

// Max returns the global maximum folded so far.
func (r *Reducer) Max() int32 { return r.global }
