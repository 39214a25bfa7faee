package object

import "github.com/objrt/objrt/internal/hashtable"

// handleKey adapts a Handle to internal/hashtable.Key so the set/dict
// engine can use objrt's own equality protocol for probing, per
// spec.md §4.6's requirement that the table be keyed by the object
// model's own Eq, not Go's ==.
type handleKey struct{ h Handle }

func (k handleKey) Equal(other hashtable.Key) (bool, error) {
	ok, ex := objectsEqual(k.h, other.(handleKey).h)
	if ex != nil {
		return false, exceptionAsError{ex}
	}
	return ok, nil
}

// exceptionAsError lets an *Exception cross internal/hashtable's
// error-returning Key.Equal boundary without that package knowing
// about object's types.
type exceptionAsError struct{ ex *Exception }

func (e exceptionAsError) Error() string { return e.ex.Name() }

func objectsEqual(a, b Handle) (bool, *Exception) {
	r := Eq(a, b)
	if e, ok := r.(*Exception); ok {
		return false, e
	}
	return r == True, nil
}

// hashOfForTable computes the hash a set/dict uses to place a key,
// using the cached Hash for immutable elements (the common case) so
// repeated lookups on the same frozenset don't re-walk its elements.
func hashOfForTable(x Handle) (uint64, *Exception) {
	h, ex := Hash(x)
	if ex != nil {
		return 0, ex
	}
	return uint64(h), nil
}

// FrozenSet is the immutable set type; Set is its mutable twin
// (spec.md §3's frozenset/set pair), both backed by
// internal/hashtable.Table.
type FrozenSet struct {
	Header
	t *hashtable.Table
}

// Set is the mutable variant of FrozenSet.
type Set struct {
	Header
	t *hashtable.Table
}

var (
	_ Handle        = (*FrozenSet)(nil)
	_ hashableOps   = (*FrozenSet)(nil)
	_ comparisonOps = (*FrozenSet)(nil)
	_ setOps        = (*FrozenSet)(nil)
	_ traversable   = (*FrozenSet)(nil)
	_ lifecycleOps  = (*FrozenSet)(nil)

	_ Handle       = (*Set)(nil)
	_ setOps       = (*Set)(nil)
	_ traversable  = (*Set)(nil)
	_ lifecycleOps = (*Set)(nil)
)

var emptyFrozenSet = newFrozenSet(hashtable.New(0))

func newFrozenSet(t *hashtable.Table) *FrozenSet {
	s := &FrozenSet{t: t}
	initHeader(&s.Header, TagFrozenSet, int32(t.Len()), int32(t.Cap()))
	return s
}

func newSet(t *hashtable.Table) *Set {
	s := &Set{t: t}
	initHeader(&s.Header, TagSet, int32(t.Len()), int32(t.Cap()))
	return s
}

// FrozenSetFromC constructs an immutable FrozenSet over items,
// increfing each distinct element retained.
func FrozenSetFromC(items ...Handle) (*FrozenSet, *Exception) {
	if len(items) == 0 {
		Incref(emptyFrozenSet)
		return emptyFrozenSet, nil
	}
	t := hashtable.New(len(items))
	if ex := populateTable(t, items); ex != nil {
		return nil, ex
	}
	return newFrozenSet(t), nil
}

// SetFromC constructs a mutable Set over items.
func SetFromC(items ...Handle) (*Set, *Exception) {
	t := hashtable.New(len(items))
	if ex := populateTable(t, items); ex != nil {
		return nil, ex
	}
	return newSet(t), nil
}

func populateTable(t *hashtable.Table, items []Handle) *Exception {
	for _, it := range items {
		if it.Tag().IsMutable() {
			return TypeError
		}
		h, ex := hashOfForTable(it)
		if ex != nil {
			return ex
		}
		_, inserted, err := t.Insert(h, handleKey{it})
		if err != nil {
			return err.(exceptionAsError).ex
		}
		if inserted {
			Incref(it)
		}
	}
	return nil
}

func (s *FrozenSet) dealloc() { releaseSetItems(s.t) }
func (s *Set) dealloc()       { releaseSetItems(s.t) }

func releaseSetItems(t *hashtable.Table) {
	t.Each(func(_ uint64, k hashtable.Key) bool {
		Decref(k.(handleKey).h)
		return true
	})
}

func (s *FrozenSet) boolValue() bool { return s.t.Len() != 0 }
func (s *Set) boolValue() bool       { return s.t.Len() != 0 }

// currentHash implements spec.md §4.4's "frozenset: order-independent
// XOR-fold of element hashes" (distinct from the ordered tuple hash),
// so that two frozensets with the same elements in different
// insertion order hash equal.
func (s *FrozenSet) currentHash(v *hashVisitor) (int64, *Exception) { return setHash(v, s.t) }

// currentHash for Set checks the live tag rather than hardcoding
// unhashability: Freeze flips a mutable object's tag bit in place
// without changing its concrete Go type, so a frozen Set must hash the
// same way a FrozenSet does once its tag says so.
func (s *Set) currentHash(v *hashVisitor) (int64, *Exception) {
	if s.Tag().IsMutable() {
		return 0, TypeError
	}
	return setHash(v, s.t)
}

func setHash(v *hashVisitor, t *hashtable.Table) (int64, *Exception) {
	var acc int64 = 1927868237
	var ex *Exception
	t.Each(func(_ uint64, k hashtable.Key) bool {
		var eh int64
		eh, ex = v.visitHash(k.(handleKey).h)
		if ex != nil {
			return false
		}
		acc ^= (eh ^ 89869747) * 3644798167
		return true
	})
	if ex != nil {
		return 0, ex
	}
	acc ^= int64(t.Len()) * 69069
	return remapHash(acc), nil
}

func setTableOf(x Handle) (*hashtable.Table, bool) {
	switch v := x.(type) {
	case *FrozenSet:
		return v.t, true
	case *Set:
		return v.t, true
	}
	return nil, false
}

func (s *FrozenSet) compare(op CompareOp, other Handle) Handle { return setCompare(op, s.t, other) }
func (s *Set) compare(op CompareOp, other Handle) Handle       { return setCompare(op, s.t, other) }

func setCompare(op CompareOp, a *hashtable.Table, other Handle) Handle {
	b, ok := setTableOf(other)
	if !ok {
		return notImplemented()
	}
	switch op {
	case OpEq:
		return boolHandle(setEqual(a, b))
	case OpNe:
		return boolHandle(!setEqual(a, b))
	case OpLe:
		ok, ex := tableIsSubsetOf(a, b)
		if ex != nil {
			return ex
		}
		return boolHandle(ok)
	case OpGe:
		ok, ex := tableIsSubsetOf(b, a)
		if ex != nil {
			return ex
		}
		return boolHandle(ok)
	case OpLt:
		ok, ex := tableIsSubsetOf(a, b)
		if ex != nil {
			return ex
		}
		return boolHandle(ok && a.Len() < b.Len())
	case OpGt:
		ok, ex := tableIsSubsetOf(b, a)
		if ex != nil {
			return ex
		}
		return boolHandle(ok && a.Len() > b.Len())
	}
	return notImplemented()
}

func setEqual(a, b *hashtable.Table) bool {
	if a.Len() != b.Len() {
		return false
	}
	ok, _ := tableIsSubsetOf(a, b)
	return ok
}

func tableIsSubsetOf(a, b *hashtable.Table) (bool, *Exception) {
	ok, err := a.IsSubsetOf(b)
	if err != nil {
		return false, err.(exceptionAsError).ex
	}
	return ok, nil
}

func (s *FrozenSet) Len() int { return s.t.Len() }
func (s *Set) Len() int       { return s.t.Len() }

func (s *FrozenSet) Contains(v Handle) (bool, *Exception) { return tableContains(s.t, v) }
func (s *Set) Contains(v Handle) (bool, *Exception)       { return tableContains(s.t, v) }

func tableContains(t *hashtable.Table, v Handle) (bool, *Exception) {
	h, ex := hashOfForTable(v)
	if ex != nil {
		return false, ex
	}
	_, found, err := t.Index(h, handleKey{v})
	if err != nil {
		return false, err.(exceptionAsError).ex
	}
	return found, nil
}

func (s *FrozenSet) IsDisjoint(other Handle) (bool, *Exception) { return setIsDisjoint(s.t, other) }
func (s *Set) IsDisjoint(other Handle) (bool, *Exception)       { return setIsDisjoint(s.t, other) }

func setIsDisjoint(a *hashtable.Table, other Handle) (bool, *Exception) {
	b, ok := setTableOf(other)
	if !ok {
		return false, TypeError
	}
	ok2, err := a.IsDisjoint(b)
	if err != nil {
		return false, err.(exceptionAsError).ex
	}
	return ok2, nil
}

func (s *FrozenSet) IsSubsetOf(other Handle) (bool, *Exception) { return setIsSubsetOf(s.t, other) }
func (s *Set) IsSubsetOf(other Handle) (bool, *Exception)       { return setIsSubsetOf(s.t, other) }

func setIsSubsetOf(a *hashtable.Table, other Handle) (bool, *Exception) {
	b, ok := setTableOf(other)
	if !ok {
		return false, TypeError
	}
	return tableIsSubsetOf(a, b)
}

// Add inserts v into the mutable set, per spec.md §4.6's set-engine
// Insert primitive.
func (s *Set) Add(v Handle) *Exception {
	if !s.Tag().IsMutable() {
		return TypeError
	}
	if v.Tag().IsMutable() {
		return TypeError
	}
	h, ex := hashOfForTable(v)
	if ex != nil {
		return ex
	}
	_, inserted, err := s.t.Insert(h, handleKey{v})
	if err != nil {
		return err.(exceptionAsError).ex
	}
	if inserted {
		Incref(v)
	}
	s.length = int32(s.t.Len())
	s.invalidateCachedHash()
	return nil
}

// Discard removes v from the mutable set if present.
func (s *Set) Discard(v Handle) *Exception {
	if !s.Tag().IsMutable() {
		return TypeError
	}
	h, ex := hashOfForTable(v)
	if ex != nil {
		return ex
	}
	removed, _, err := s.t.Delete(h, handleKey{v})
	if err != nil {
		return err.(exceptionAsError).ex
	}
	if removed {
		Decref(v)
	}
	s.length = int32(s.t.Len())
	s.invalidateCachedHash()
	return nil
}

// Clear empties the mutable set in place, spec.md §6's generic
// `clear`.
func (s *Set) Clear() *Exception {
	if !s.Tag().IsMutable() {
		return TypeError
	}
	releaseSetItems(s.t)
	s.t = hashtable.New(0)
	s.length = 0
	s.invalidateCachedHash()
	return nil
}

// Pop removes and returns an arbitrary element, per spec.md §4.6's
// persisted-cursor PopArbitrary.
func (s *Set) Pop() (Handle, *Exception) {
	if !s.Tag().IsMutable() {
		return nil, TypeError
	}
	k, ok := s.t.PopArbitrary()
	if !ok {
		return nil, KeyError
	}
	s.length = int32(s.t.Len())
	s.invalidateCachedHash()
	return k.(handleKey).h, nil
}

func setUnion(a, b Handle) (*hashtable.Table, *Exception) {
	ta, ok := setTableOf(a)
	if !ok {
		return nil, TypeError
	}
	tb, ok := setTableOf(b)
	if !ok {
		return nil, TypeError
	}
	out := ta.Clone()
	if err := out.UpdateFrom(tb); err != nil {
		return nil, err.(exceptionAsError).ex
	}
	out.Each(func(_ uint64, k hashtable.Key) bool { Incref(k.(handleKey).h); return true })
	return out, nil
}

// Union implements spec.md §4.6's UpdateFrom, read-only: returns a
// new immutable FrozenSet holding the union of a and b.
func Union(a, b Handle) Handle {
	t, ex := setUnion(a, b)
	if ex != nil {
		return ex
	}
	return newFrozenSet(t)
}

// setBinaryOp runs a *hashtable.Table mutator over a clone of a's
// table updated from b's, reincrefing the survivors — the shared shape
// behind Intersection, Difference, and SymmetricDifference.
func setBinaryOp(a, b Handle, apply func(t, other *hashtable.Table) error) (*hashtable.Table, *Exception) {
	ta, ok := setTableOf(a)
	if !ok {
		return nil, TypeError
	}
	tb, ok := setTableOf(b)
	if !ok {
		return nil, TypeError
	}
	out := ta.Clone()
	if err := apply(out, tb); err != nil {
		return nil, err.(exceptionAsError).ex
	}
	out.Each(func(_ uint64, k hashtable.Key) bool { Incref(k.(handleKey).h); return true })
	return out, nil
}

// snapshotSetKeys captures a set's current members, for diffing
// before/after a Table-level in-place mutation.
func snapshotSetKeys(t *hashtable.Table) []Handle {
	out := make([]Handle, 0, t.Len())
	t.Each(func(_ uint64, k hashtable.Key) bool {
		out = append(out, k.(handleKey).h)
		return true
	})
	return out
}

// setMutateInPlace runs a *hashtable.Table mutator directly over s's
// own table (not a clone), then reconciles refcounts by diffing the
// member snapshot before and after: members that appear only in the
// "after" snapshot are newly owned by s and get one incref; members
// that appear only in "before" were dropped and get one decref. This
// mirrors spec.md §4.6's in-place set-update primitives
// (`update_from_set`, `difference_update_from_set`,
// `intersection_update_from_set`,
// `symmetric_difference_update_from_set`) without needing per-call
// hooks inside the Table mutators themselves for which keys moved.
func setMutateInPlace(s *Set, other Handle, apply func(t, other *hashtable.Table) error) *Exception {
	if !s.Tag().IsMutable() {
		return TypeError
	}
	tb, ok := setTableOf(other)
	if !ok {
		return TypeError
	}
	before := snapshotSetKeys(s.t)
	if err := apply(s.t, tb); err != nil {
		return err.(exceptionAsError).ex
	}
	after := snapshotSetKeys(s.t)
	beforeSet := make(map[Handle]bool, len(before))
	for _, h := range before {
		beforeSet[h] = true
	}
	afterSet := make(map[Handle]bool, len(after))
	for _, h := range after {
		afterSet[h] = true
		if !beforeSet[h] {
			Incref(h)
		}
	}
	for _, h := range before {
		if !afterSet[h] {
			Decref(h)
		}
	}
	s.length = int32(s.t.Len())
	s.invalidateCachedHash()
	return nil
}

// UpdateFrom adds every member of other into s in place, spec.md §4.6's
// `update_from_set`.
func (s *Set) UpdateFrom(other Handle) *Exception {
	return setMutateInPlace(s, other, (*hashtable.Table).UpdateFrom)
}

// DifferenceUpdateFrom removes from s every member also present in
// other, spec.md §4.6's `difference_update_from_set`.
func (s *Set) DifferenceUpdateFrom(other Handle) *Exception {
	return setMutateInPlace(s, other, (*hashtable.Table).DifferenceUpdateFrom)
}

// IntersectionUpdateFrom removes from s every member not present in
// other, spec.md §4.6's `intersection_update_from_set`.
func (s *Set) IntersectionUpdateFrom(other Handle) *Exception {
	return setMutateInPlace(s, other, (*hashtable.Table).IntersectionUpdateFrom)
}

// SymmetricDifferenceUpdateFrom leaves s holding members present in
// exactly one of s or other, spec.md §4.6's
// `symmetric_difference_update_from_set`.
func (s *Set) SymmetricDifferenceUpdateFrom(other Handle) *Exception {
	return setMutateInPlace(s, other, (*hashtable.Table).SymmetricDifferenceUpdateFrom)
}

// Intersection implements spec.md §6's intersection_n (pairwise):
// returns a new immutable FrozenSet holding elements present in both
// a and b.
func Intersection(a, b Handle) Handle {
	t, ex := setBinaryOp(a, b, (*hashtable.Table).IntersectionUpdateFrom)
	if ex != nil {
		return ex
	}
	return newFrozenSet(t)
}

// Difference implements spec.md §6's difference_n (pairwise): returns
// a new immutable FrozenSet holding elements of a not present in b.
func Difference(a, b Handle) Handle {
	t, ex := setBinaryOp(a, b, (*hashtable.Table).DifferenceUpdateFrom)
	if ex != nil {
		return ex
	}
	return newFrozenSet(t)
}

// SymmetricDifference implements spec.md §6's symmetric_difference:
// returns a new immutable FrozenSet holding elements in exactly one of
// a or b.
func SymmetricDifference(a, b Handle) Handle {
	t, ex := setBinaryOp(a, b, (*hashtable.Table).SymmetricDifferenceUpdateFrom)
	if ex != nil {
		return ex
	}
	return newFrozenSet(t)
}


func (s *FrozenSet) Iter() *Iterator { return NewSetIterator(s) }
func (s *Set) Iter() *Iterator       { return NewSetIterator(s) }

func (s *FrozenSet) freeze() {}
func (s *FrozenSet) clone(mutable, deep bool, memo *copyMemo) Handle {
	return cloneSetTable(s.t, mutable, deep, memo)
}
func (s *FrozenSet) releaseContents() {}

func (s *Set) freeze() {}
func (s *Set) clone(mutable, deep bool, memo *copyMemo) Handle {
	return cloneSetTable(s.t, mutable, deep, memo)
}
func (s *Set) releaseContents() { releaseSetItems(s.t); s.t = hashtable.New(0) }

func cloneSetTable(src *hashtable.Table, mutable, deep bool, memo *copyMemo) Handle {
	out := hashtable.New(src.Len())
	src.Each(func(h uint64, k hashtable.Key) bool {
		elem := k.(handleKey).h
		if deep {
			elem = deepCopy(elem, elem.Tag().IsMutable(), memo)
		} else {
			Incref(elem)
		}
		_, _, _ = out.Insert(h, handleKey{elem})
		return true
	})
	if mutable {
		return newSet(out)
	}
	return newFrozenSet(out)
}

func (s *FrozenSet) traverseMut(visit func(*Handle)) { traverseSetTable(s.t, visit) }
func (s *Set) traverseMut(visit func(*Handle))       { traverseSetTable(s.t, visit) }

func traverseSetTable(t *hashtable.Table, visit func(*Handle)) {
	t.Each(func(_ uint64, k hashtable.Key) bool {
		hk := k.(handleKey)
		h := hk.h
		visit(&h)
		return true
	})
}
