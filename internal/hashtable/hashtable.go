// Package hashtable implements the open-addressed hash table engine
// shared by objrt's set and mapping families: perturbation probing, a
// tombstone sentinel distinguishable from any real key, 2/3 fill-factor
// resize, clean-insert during resize, and an amortized-O(1)
// arbitrary-key pop via a persisted search cursor.
//
// Concurrency
// -----------
// A Table is not thread-safe. Exactly like internal/clockpro in the
// teacher repo, external synchronisation is guaranteed by the caller
// (object's mutable containers document this at the object.Handle
// level); this package adds no locking of its own.
package hashtable

// Key is the minimal contract a stored key must satisfy: a stable hash
// and an equality check that may itself fail (propagating an error from
// a user-level comparison callback aborts the probe).
type Key interface {
	// Equal reports whether k equals other. A non-nil error aborts the
	// calling probe and must be propagated unchanged.
	Equal(other Key) (bool, error)
}

const (
	// MinCapacity is the smallest table capacity, per spec.md §3: "C is
	// always a power of two >= 8".
	MinCapacity = 8
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotActive
	slotDummy
)

type slot struct {
	hash  uint64
	key   Key
	state slotState
}

// Table is the shared keyset engine. A mapping embeds one Table plus a
// parallel value slice indexed by slot index (see Values/NewValues).
type Table struct {
	slots []slot
	fill  int // active + dummy
	active int

	// popCursor persists the arbitrary-key-pop search position across
	// calls, per spec.md §4.6 "Arbitrary-key pop" — amortizes the scan
	// to O(1) by remembering where the last pop left off.
	popCursor int
}

// New constructs a table sized for at least minCount keys.
func New(minCount int) *Table {
	t := &Table{}
	t.slots = make([]slot, capacityFor(minCount))
	return t
}

// capacityFor returns the smallest power-of-two capacity >= MinCapacity
// satisfying spec.md §4.6's resize formula:
//
//	new_capacity = smallest power-of-two >= ceil(3*required/2) + 1
func capacityFor(required int) int {
	if required < 0 {
		required = 0
	}
	need := (3*required+1)/2 + 1
	c := MinCapacity
	for c < need {
		c <<= 1
	}
	return c
}

// growthRequiredFor implements spec.md §4.6's "more generous" growth
// formula used by mutable tables to amortize repeated inserts:
//
//	required = (newlen > 50000 ? 2 : 4) * newlen
func growthRequiredFor(newlen int) int {
	if newlen > 50000 {
		return 2 * newlen
	}
	return 4 * newlen
}

// Cap returns the table's current slot capacity.
func (t *Table) Cap() int { return len(t.slots) }

// Len returns the number of active (non-tombstone) entries.
func (t *Table) Len() int { return t.active }

// spaceRemaining is "floor(2C/3) - fill", the invariant from spec.md §3.
func (t *Table) spaceRemaining() int {
	return (2*len(t.slots))/3 - t.fill
}

type probeResult struct {
	index int
	found bool
	// freeslot, when >= 0 and !found, is the dummy slot to reuse for
	// insertion instead of the terminating empty slot — spec.md §4.6's
	// "if a dummy was seen earlier, use that slot."
	freeslot int
}

// probe implements spec.md §4.6's probe sequence exactly:
//
//	i = h mod C
//	perturb = h
//	loop:
//	  slot = table[i]
//	  if slot.key == empty: return (slot, "insert here"); prefer a
//	    remembered dummy slot if one was seen.
//	  if slot.key == k: return (slot, "found")
//	  if slot.key == dummy: remember as freeslot; continue
//	  if slot.hash == h and eq(slot.key, k): return (slot, "found")
//	  i = (5i + perturb + 1) mod C
//	  perturb >>= 5
func (t *Table) probe(h uint64, k Key) (probeResult, error) {
	mask := uint64(len(t.slots) - 1)
	i := h & mask
	perturb := h
	freeslot := -1

	for {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			if freeslot >= 0 {
				return probeResult{index: freeslot, found: false}, nil
			}
			return probeResult{index: int(i), found: false}, nil
		case slotDummy:
			if freeslot < 0 {
				freeslot = int(i)
			}
		case slotActive:
			if s.hash == h {
				eq, err := s.key.Equal(k)
				if err != nil {
					return probeResult{}, err
				}
				if eq {
					return probeResult{index: int(i), found: true}, nil
				}
			}
		}
		i = (5*i + perturb + 1) & mask
		perturb >>= 5
	}
}

// cleanProbe is probe's variant used during resize: all keys are known
// unique and no dummies exist, so it never needs to compare and always
// terminates at the first empty slot.
func (t *Table) cleanProbe(h uint64) int {
	mask := uint64(len(t.slots) - 1)
	i := h & mask
	perturb := h
	for t.slots[i].state != slotEmpty {
		i = (5*i + perturb + 1) & mask
		perturb >>= 5
	}
	return int(i)
}

// Lookup returns the key stored for (h, k), if present.
func (t *Table) Lookup(h uint64, k Key) (Key, bool, error) {
	r, err := t.probe(h, k)
	if err != nil {
		return nil, false, err
	}
	if !r.found {
		return nil, false, nil
	}
	return t.slots[r.index].key, true, nil
}

// Index returns the slot index for (h, k) if present, for use by a
// mapping's parallel value array.
func (t *Table) Index(h uint64, k Key) (int, bool, error) {
	r, err := t.probe(h, k)
	if err != nil {
		return 0, false, err
	}
	return r.index, r.found, nil
}

// Insert adds (h, k), growing the table first if needed. It returns the
// slot index the key landed in (stable until the next resize) and
// whether the key was newly inserted (false if it already existed, in
// which case the stored key is left unchanged — callers that need
// replace-on-exists semantics must Delete first).
func (t *Table) Insert(h uint64, k Key) (index int, inserted bool, err error) {
	if t.spaceRemaining() <= 0 {
		if err := t.Grow(growthRequiredFor(t.active + 1)); err != nil {
			return 0, false, err
		}
	}
	r, err := t.probe(h, k)
	if err != nil {
		return 0, false, err
	}
	if r.found {
		return r.index, false, nil
	}
	s := &t.slots[r.index]
	if s.state == slotEmpty {
		t.fill++
	}
	s.hash = h
	s.key = k
	s.state = slotActive
	t.active++
	return r.index, true, nil
}

// CleanInsert inserts a key known to be absent and unique, without
// probing for equality. Used only during Grow/resize.
func (t *Table) CleanInsert(h uint64, k Key) int {
	idx := t.cleanProbe(h)
	s := &t.slots[idx]
	s.hash = h
	s.key = k
	s.state = slotActive
	t.fill++
	t.active++
	return idx
}

// Delete removes (h, k) if present, replacing it with a tombstone. The
// table is never resized on delete, per spec.md §4.6.
func (t *Table) Delete(h uint64, k Key) (removed bool, removedIndex int, err error) {
	r, err := t.probe(h, k)
	if err != nil {
		return false, 0, err
	}
	if !r.found {
		return false, 0, nil
	}
	s := &t.slots[r.index]
	s.key = nil
	s.state = slotDummy
	t.active--
	return true, r.index, nil
}

// Grow resizes to the smallest capacity accommodating minRequired active
// keys, relocating every active entry with CleanInsert (dummies are
// dropped, since a resize is the natural point to reclaim them).
func (t *Table) Grow(minRequired int) error {
	newCap := capacityFor(minRequired)
	if newCap < len(t.slots) {
		newCap = len(t.slots)
	}
	old := t.slots
	t.slots = make([]slot, newCap)
	t.fill = 0
	t.active = 0
	t.popCursor = 0
	for i := range old {
		if old[i].state == slotActive {
			t.CleanInsert(old[i].hash, old[i].key)
		}
	}
	return nil
}

// PopArbitrary removes and returns an arbitrary active entry, using the
// persisted cursor from spec.md §4.6 to amortize the scan: "Uses
// table[0].stored_hash as a persisted search cursor across calls when
// slot 0 is empty, enabling O(1) amortized arbitrary removal." We
// generalize the cursor to an index field since Go slots don't
// special-case index 0.
func (t *Table) PopArbitrary() (Key, bool) {
	if t.active == 0 {
		return nil, false
	}
	n := len(t.slots)
	for i := 0; i < n; i++ {
		idx := (t.popCursor + i) % n
		if t.slots[idx].state == slotActive {
			k := t.slots[idx].key
			t.slots[idx].key = nil
			t.slots[idx].state = slotDummy
			t.active--
			t.popCursor = (idx + 1) % n
			return k, true
		}
	}
	return nil, false
}

// Each calls fn for every active (hash, key) pair in slot order. fn
// returning false stops iteration early.
func (t *Table) Each(fn func(hash uint64, k Key) bool) {
	for i := range t.slots {
		if t.slots[i].state == slotActive {
			if !fn(t.slots[i].hash, t.slots[i].key) {
				return
			}
		}
	}
}

// Clear empties the table in place without changing its capacity.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.fill = 0
	t.active = 0
	t.popCursor = 0
}

// Clone returns a deep structural copy (new backing array, same keys —
// keys themselves are not cloned, matching Table's "keys are opaque to
// the engine" contract).
func (t *Table) Clone() *Table {
	c := &Table{slots: make([]slot, len(t.slots)), fill: t.fill, active: t.active}
	copy(c.slots, t.slots)
	return c
}
