package object

import "github.com/objrt/objrt/internal/hashtable"

// pairedTable couples a hashtable.Table keyset with a parallel
// hashtable.Values array, per spec.md §4.6's mapping design ("a
// parallel array of value slots indexed by entry index"). Because
// Table may resize itself inside Insert without exposing an
// old-index -> new-index map, pairedTable keeps its own parallel
// `keys` slice (mirroring the Values slots) so that, after a resize is
// detected (capacity changed), it can relocate every live value by
// re-deriving each key's fresh slot index via Table.Index.
type pairedTable struct {
	t    *hashtable.Table
	vals *hashtable.Values[Handle]
	keys []Handle
}

func newPairedTable(minCount int) *pairedTable {
	t := hashtable.New(minCount)
	return &pairedTable{t: t, vals: hashtable.NewValues[Handle](t.Cap()), keys: make([]Handle, t.Cap())}
}

func (p *pairedTable) len() int { return p.vals.Len() }

func (p *pairedTable) lookup(h uint64, k Handle) (Handle, bool, *Exception) {
	idx, found, err := p.t.Index(h, handleKey{k})
	if err != nil {
		return nil, false, err.(exceptionAsError).ex
	}
	if !found {
		return nil, false, nil
	}
	v, ok := p.vals.Get(idx)
	return v, ok, nil
}

// set inserts or replaces the value for k, growing and relocating as
// needed. Returns whether the key was newly added to the keyset.
func (p *pairedTable) set(h uint64, k, v Handle) (bool, *Exception) {
	oldCap := p.t.Cap()
	idx, inserted, err := p.t.Insert(h, handleKey{k})
	if err != nil {
		return false, err.(exceptionAsError).ex
	}
	if p.t.Cap() != oldCap {
		p.rebuildAfterResize()
		idx, _, err = p.t.Index(h, handleKey{k})
		if err != nil {
			return false, err.(exceptionAsError).ex
		}
	}
	if old, had := p.vals.Get(idx); had {
		Decref(old)
	}
	p.keys[idx] = k
	p.vals.Set(idx, v)
	return inserted, nil
}

// clearKey removes k's value (and, if present, its keyset entry) so a
// subsequent lookup reports "absent", per spec.md §4.6's
// null-means-absent convention.
func (p *pairedTable) clearKey(h uint64, k Handle) (Handle, bool, *Exception) {
	idx, found, err := p.t.Index(h, handleKey{k})
	if err != nil {
		return nil, false, err.(exceptionAsError).ex
	}
	if !found {
		return nil, false, nil
	}
	old, hadVal := p.vals.Get(idx)
	p.vals.Clear(idx)
	p.keys[idx] = nil
	if _, _, err := p.t.Delete(h, handleKey{k}); err != nil {
		return nil, false, err.(exceptionAsError).ex
	}
	return old, hadVal, nil
}

func (p *pairedTable) rebuildAfterResize() {
	newKeys := make([]Handle, p.t.Cap())
	newVals := hashtable.NewValues[Handle](p.t.Cap())
	for oldIdx, k := range p.keys {
		if k == nil {
			continue
		}
		v, ok := p.vals.Get(oldIdx)
		if !ok {
			continue
		}
		h, _ := Hash(k)
		newIdx, found, _ := p.t.Index(uint64(h), handleKey{k})
		if !found {
			continue
		}
		newKeys[newIdx] = k
		newVals.Set(newIdx, v)
	}
	p.keys = newKeys
	p.vals = newVals
}

func (p *pairedTable) each(fn func(k, v Handle) bool) {
	for i, k := range p.keys {
		if k == nil {
			continue
		}
		v, ok := p.vals.Get(i)
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

func (p *pairedTable) cap() int { return p.t.Cap() }

// FrozenDict is the immutable mapping type; Dict is its mutable twin
// (spec.md §3's frozendict/dict pair).
type FrozenDict struct {
	Header
	p *pairedTable
}

// Dict is the mutable variant of FrozenDict.
type Dict struct {
	Header
	p *pairedTable
}

var (
	_ Handle        = (*FrozenDict)(nil)
	_ hashableOps   = (*FrozenDict)(nil)
	_ comparisonOps = (*FrozenDict)(nil)
	_ mappingOps    = (*FrozenDict)(nil)
	_ traversable   = (*FrozenDict)(nil)
	_ lifecycleOps  = (*FrozenDict)(nil)

	_ Handle       = (*Dict)(nil)
	_ mappingOps   = (*Dict)(nil)
	_ traversable  = (*Dict)(nil)
	_ lifecycleOps = (*Dict)(nil)
)

func newFrozenDict(p *pairedTable) *FrozenDict {
	d := &FrozenDict{p: p}
	initHeader(&d.Header, TagFrozenDict, int32(p.len()), int32(p.cap()))
	return d
}

func newDict(p *pairedTable) *Dict {
	d := &Dict{p: p}
	initHeader(&d.Header, TagDict, int32(p.len()), int32(p.cap()))
	return d
}

var emptyFrozenDict = newFrozenDict(newPairedTable(0))

// FrozenDictFromC constructs an immutable FrozenDict from key/value
// pairs, increfing each key and value it retains.
func FrozenDictFromC(keys, values []Handle) (*FrozenDict, *Exception) {
	if len(keys) != len(values) {
		return nil, ValueError
	}
	if len(keys) == 0 {
		Incref(emptyFrozenDict)
		return emptyFrozenDict, nil
	}
	p := newPairedTable(len(keys))
	if ex := populatePaired(p, keys, values); ex != nil {
		return nil, ex
	}
	return newFrozenDict(p), nil
}

// DictFromC constructs a mutable Dict from key/value pairs.
func DictFromC(keys, values []Handle) (*Dict, *Exception) {
	if len(keys) != len(values) {
		return nil, ValueError
	}
	p := newPairedTable(len(keys))
	if ex := populatePaired(p, keys, values); ex != nil {
		return nil, ex
	}
	return newDict(p), nil
}

func populatePaired(p *pairedTable, keys, values []Handle) *Exception {
	for i, k := range keys {
		if k.Tag().IsMutable() {
			return TypeError
		}
		h, ex := hashOfForTable(k)
		if ex != nil {
			return ex
		}
		replaced, ex2 := p.set(h, k, values[i])
		if ex2 != nil {
			return ex2
		}
		if !replaced {
			Incref(k)
		}
		Incref(values[i])
	}
	return nil
}

func (d *FrozenDict) dealloc() { releasePaired(d.p) }
func (d *Dict) dealloc()       { releasePaired(d.p) }

func releasePaired(p *pairedTable) {
	p.each(func(k, v Handle) bool {
		Decref(k)
		Decref(v)
		return true
	})
}

func (d *FrozenDict) boolValue() bool { return d.p.len() != 0 }
func (d *Dict) boolValue() bool       { return d.p.len() != 0 }

// currentHash implements spec.md §4.4's "frozendict: order-independent
// XOR-fold of key and value hashes, seeded distinctly from frozenset"
// per the Open Question decision in DESIGN.md.
func (d *FrozenDict) currentHash(v *hashVisitor) (int64, *Exception) { return dictHash(v, d.p) }

// currentHash for Dict checks the live tag rather than hardcoding
// unhashability: Freeze flips a mutable object's tag bit in place
// without changing its concrete Go type, so a frozen Dict must hash
// the same way a FrozenDict does once its tag says so.
func (d *Dict) currentHash(v *hashVisitor) (int64, *Exception) {
	if d.Tag().IsMutable() {
		return 0, TypeError
	}
	return dictHash(v, d.p)
}

func dictHash(v *hashVisitor, p *pairedTable) (int64, *Exception) {
	var acc int64 = -1640531527
	var ex *Exception
	p.each(func(k, val Handle) bool {
		var kh, vh int64
		kh, ex = v.visitHash(k)
		if ex != nil {
			return false
		}
		vh, ex = v.visitHash(val)
		if ex != nil {
			return false
		}
		acc ^= (kh*1000003 + vh) ^ 0x345678
		return true
	})
	if ex != nil {
		return 0, ex
	}
	acc ^= int64(p.len()) * 1000003
	return remapHash(acc), nil
}

func pairedOf(x Handle) (*pairedTable, bool) {
	switch v := x.(type) {
	case *FrozenDict:
		return v.p, true
	case *Dict:
		return v.p, true
	}
	return nil, false
}

func (d *FrozenDict) compare(op CompareOp, other Handle) Handle { return dictCompare(op, d.p, other) }
func (d *Dict) compare(op CompareOp, other Handle) Handle       { return dictCompare(op, d.p, other) }

func dictCompare(op CompareOp, a *pairedTable, other Handle) Handle {
	b, ok := pairedOf(other)
	if !ok {
		return notImplemented()
	}
	if op != OpEq && op != OpNe {
		return notImplemented()
	}
	eq, ex := dictEqual(a, b)
	if ex != nil {
		return ex
	}
	if op == OpEq {
		return boolHandle(eq)
	}
	return boolHandle(!eq)
}

func dictEqual(a, b *pairedTable) (bool, *Exception) {
	if a.len() != b.len() {
		return false, nil
	}
	equal := true
	var ex *Exception
	a.each(func(k, v Handle) bool {
		h, e := Hash(k)
		if e != nil {
			ex = e
			return false
		}
		bv, found, e := b.lookup(uint64(h), k)
		if e != nil {
			ex = e
			return false
		}
		if !found {
			equal = false
			return false
		}
		r := Eq(v, bv)
		if be, ok := r.(*Exception); ok {
			ex = be
			return false
		}
		if r != True {
			equal = false
			return false
		}
		return true
	})
	return equal, ex
}

func (d *FrozenDict) Len() int { return d.p.len() }
func (d *Dict) Len() int       { return d.p.len() }

func (d *FrozenDict) GetItem(k Handle) (Handle, *Exception) { return pairedGetItem(d.p, k) }
func (d *Dict) GetItem(k Handle) (Handle, *Exception)       { return pairedGetItem(d.p, k) }

func pairedGetItem(p *pairedTable, k Handle) (Handle, *Exception) {
	h, ex := hashOfForTable(k)
	if ex != nil {
		return nil, ex
	}
	v, found, ex := p.lookup(h, k)
	if ex != nil {
		return nil, ex
	}
	if !found {
		return nil, KeyError
	}
	Incref(v)
	return v, nil
}

func (d *FrozenDict) Contains(k Handle) (bool, *Exception) { return pairedContains(d.p, k) }
func (d *Dict) Contains(k Handle) (bool, *Exception)       { return pairedContains(d.p, k) }

func pairedContains(p *pairedTable, k Handle) (bool, *Exception) {
	h, ex := hashOfForTable(k)
	if ex != nil {
		return false, ex
	}
	_, found, ex := p.lookup(h, k)
	return found, ex
}

// SetItem inserts or replaces the value for key k in the mutable dict.
func (d *Dict) SetItem(k, v Handle) *Exception {
	if !d.Tag().IsMutable() {
		return TypeError
	}
	if k.Tag().IsMutable() {
		return TypeError
	}
	h, ex := hashOfForTable(k)
	if ex != nil {
		return ex
	}
	Incref(v)
	isNewKey, ex2 := d.p.set(h, k, v)
	if ex2 != nil {
		Decref(v)
		return ex2
	}
	if isNewKey {
		Incref(k)
	}
	d.length = int32(d.p.len())
	d.invalidateCachedHash()
	return nil
}

// PopItem removes and returns k's value.
func (d *Dict) PopItem(k Handle) (Handle, *Exception) {
	if !d.Tag().IsMutable() {
		return nil, TypeError
	}
	h, ex := hashOfForTable(k)
	if ex != nil {
		return nil, ex
	}
	v, found, ex := d.p.clearKey(h, k)
	if ex != nil {
		return nil, ex
	}
	if !found {
		return nil, KeyError
	}
	Decref(k)
	d.length = int32(d.p.len())
	d.invalidateCachedHash()
	return v, nil
}

// Clear empties the mutable dict in place, spec.md §6's generic
// `clear`.
func (d *Dict) Clear() *Exception {
	if !d.Tag().IsMutable() {
		return TypeError
	}
	releasePaired(d.p)
	d.p = newPairedTable(0)
	d.length = 0
	d.invalidateCachedHash()
	return nil
}

func (d *FrozenDict) Iter() *Iterator { return NewMappingIterator(d.p) }
func (d *Dict) Iter() *Iterator       { return NewMappingIterator(d.p) }

// ItemsIter yields (key, value) Tuples in table order, spec.md §4.2's
// mapping suite `iter_items`.
func (d *FrozenDict) ItemsIter() *Iterator { return NewMappingItemsIterator(d.p) }
func (d *Dict) ItemsIter() *Iterator       { return NewMappingItemsIterator(d.p) }

// ValuesIter yields values in table order, spec.md §4.2's mapping
// suite `iter_values`.
func (d *FrozenDict) ValuesIter() *Iterator { return NewMappingValuesIterator(d.p) }
func (d *Dict) ValuesIter() *Iterator       { return NewMappingValuesIterator(d.p) }

// GetDefault returns k's value, or def (increfed for the caller) if k
// is absent, spec.md §4.2's mapping suite `getdefault`.
func (d *FrozenDict) GetDefault(k, def Handle) (Handle, *Exception) { return pairedGetDefault(d.p, k, def) }
func (d *Dict) GetDefault(k, def Handle) (Handle, *Exception)       { return pairedGetDefault(d.p, k, def) }

func pairedGetDefault(p *pairedTable, k, def Handle) (Handle, *Exception) {
	h, ex := hashOfForTable(k)
	if ex != nil {
		return nil, ex
	}
	v, found, ex := p.lookup(h, k)
	if ex != nil {
		return nil, ex
	}
	if !found {
		Incref(def)
		return def, nil
	}
	Incref(v)
	return v, nil
}

// SetDefault returns k's existing value, or inserts def and returns it
// if k is absent, spec.md §4.2's mapping suite `setdefault`.
func (d *Dict) SetDefault(k, def Handle) (Handle, *Exception) {
	if !d.Tag().IsMutable() {
		return nil, TypeError
	}
	if k.Tag().IsMutable() {
		return nil, TypeError
	}
	h, ex := hashOfForTable(k)
	if ex != nil {
		return nil, ex
	}
	v, found, ex := d.p.lookup(h, k)
	if ex != nil {
		return nil, ex
	}
	if found {
		Incref(v)
		return v, nil
	}
	Incref(def)
	isNewKey, ex2 := d.p.set(h, k, def)
	if ex2 != nil {
		Decref(def)
		return nil, ex2
	}
	if isNewKey {
		Incref(k)
	}
	d.length = int32(d.p.len())
	d.invalidateCachedHash()
	Incref(def)
	return def, nil
}

// Update merges other's items into d, overwriting existing keys,
// spec.md §4.2's mapping suite `update`.
func (d *Dict) Update(other Handle) *Exception {
	if !d.Tag().IsMutable() {
		return TypeError
	}
	op, ok := pairedOf(other)
	if !ok {
		return TypeError
	}
	var outEx *Exception
	op.each(func(k, v Handle) bool {
		if k.Tag().IsMutable() {
			outEx = TypeError
			return false
		}
		h, ex := hashOfForTable(k)
		if ex != nil {
			outEx = ex
			return false
		}
		Incref(v)
		isNewKey, ex2 := d.p.set(h, k, v)
		if ex2 != nil {
			Decref(v)
			outEx = ex2
			return false
		}
		if isNewKey {
			Incref(k)
		}
		return true
	})
	if outEx != nil {
		return outEx
	}
	d.length = int32(d.p.len())
	d.invalidateCachedHash()
	return nil
}

func (d *FrozenDict) freeze() {}
func (d *FrozenDict) clone(mutable, deep bool, memo *copyMemo) Handle {
	return clonePaired(d.p, mutable, deep, memo)
}
func (d *FrozenDict) releaseContents() {}

func (d *Dict) freeze() {}
func (d *Dict) clone(mutable, deep bool, memo *copyMemo) Handle {
	if deep && mutable {
		// Register the clone in memo before copying the items, so a
		// value that refers back to d resolves to this clone instead of
		// recursing without end.
		out := newDict(newPairedTable(0))
		memo.put(d, out)
		filled := clonePaired(d.p, true, true, memo).(*Dict)
		out.p, out.length, out.alloclen = filled.p, filled.length, filled.alloclen
		return out
	}
	return clonePaired(d.p, mutable, deep, memo)
}
func (d *Dict) releaseContents() { releasePaired(d.p); d.p = newPairedTable(0) }

func clonePaired(src *pairedTable, mutable, deep bool, memo *copyMemo) Handle {
	out := newPairedTable(src.len())
	src.each(func(k, v Handle) bool {
		ck, cv := k, v
		if deep {
			ck = deepCopy(k, k.Tag().IsMutable(), memo)
			cv = deepCopy(v, v.Tag().IsMutable(), memo)
		} else {
			Incref(ck)
			Incref(cv)
		}
		h, _ := Hash(ck)
		_, _ = out.set(uint64(h), ck, cv)
		return true
	})
	if mutable {
		return newDict(out)
	}
	return newFrozenDict(out)
}

func (d *FrozenDict) traverseMut(visit func(*Handle)) { traversePaired(d.p, visit) }
func (d *Dict) traverseMut(visit func(*Handle))       { traversePaired(d.p, visit) }

func traversePaired(p *pairedTable, visit func(*Handle)) {
	p.each(func(k, v Handle) bool {
		kk, vv := k, v
		visit(&kk)
		visit(&vv)
		return true
	})
}
