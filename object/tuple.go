package object

import "sort"

// Tuple is the immutable sequence type; List is its mutable twin
// (spec.md §3's tuple/list pair). Both hold a slice of Handles; the
// owner holds one reference to each contained handle.
type Tuple struct {
	Header
	items []Handle
}

// List is the mutable variant of Tuple.
type List struct {
	Header
	items []Handle
}

var (
	_ Handle        = (*Tuple)(nil)
	_ hashableOps   = (*Tuple)(nil)
	_ comparisonOps = (*Tuple)(nil)
	_ sequenceOps   = (*Tuple)(nil)
	_ traversable   = (*Tuple)(nil)
	_ lifecycleOps  = (*Tuple)(nil)

	_ Handle             = (*List)(nil)
	_ hashableOps        = (*List)(nil)
	_ comparisonOps      = (*List)(nil)
	_ mutableSequenceOps = (*List)(nil)
	_ traversable        = (*List)(nil)
	_ lifecycleOps       = (*List)(nil)
)

var emptyTuple = newTuple(nil)

func newTuple(items []Handle) *Tuple {
	t := &Tuple{items: items}
	initHeader(&t.Header, TagTuple, int32(len(items)), int32(len(items)))
	return t
}

// TupleFromC constructs an immutable Tuple over items, taking
// ownership of (increfing) each one.
func TupleFromC(items ...Handle) *Tuple {
	if len(items) == 0 {
		Incref(emptyTuple)
		return emptyTuple
	}
	cp := make([]Handle, len(items))
	copy(cp, items)
	IncrefN(cp...)
	return newTuple(cp)
}

// ListFromC constructs a mutable List over items, increfing each one.
func ListFromC(items ...Handle) *List {
	cp := make([]Handle, len(items))
	copy(cp, items)
	IncrefN(cp...)
	l := &List{items: cp}
	initHeader(&l.Header, TagList, int32(len(cp)), int32(len(cp)))
	return l
}

func (t *Tuple) dealloc() { DecrefN(t.items...) }
func (l *List) dealloc()  { DecrefN(l.items...) }

func (t *Tuple) boolValue() bool { return len(t.items) != 0 }
func (l *List) boolValue() bool  { return len(l.items) != 0 }

// currentHash implements spec.md §4.4's "tuple: fold each element's
// hash (via the visitor, so frozen nested containers reuse their
// cache) with the 1000003 multiplier, seeded by length" — the same
// construction nohtyP.c uses for its tuple hash, applied through
// hashVisitor so unhashable elements (e.g. a nested list) correctly
// surface TypeError rather than panicking.
func (t *Tuple) currentHash(v *hashVisitor) (int64, *Exception) {
	return sequenceHash(v, t.items)
}

// currentHash for List checks the live tag rather than hardcoding
// unhashability: Freeze flips a mutable object's tag bit in place
// without changing its concrete Go type, so a frozen List must hash
// the same way a Tuple does once its tag says so.
func (l *List) currentHash(v *hashVisitor) (int64, *Exception) {
	if l.Tag().IsMutable() {
		return 0, TypeError
	}
	return sequenceHash(v, l.items)
}

func sequenceHash(v *hashVisitor, items []Handle) (int64, *Exception) {
	h := int64(len(items))
	for _, it := range items {
		eh, ex := v.visitHash(it)
		if ex != nil {
			return 0, ex
		}
		h = (h * 1000003) ^ eh
	}
	return remapHash(h), nil
}

func itemsOf(x Handle) ([]Handle, bool) {
	switch v := x.(type) {
	case *Tuple:
		return v.items, true
	case *List:
		return v.items, true
	}
	return nil, false
}

func sequenceCompare(op CompareOp, a []Handle, other Handle) Handle {
	b, ok := itemsOf(other)
	if !ok {
		return notImplemented()
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		eq := Eq(a[i], b[i])
		if be, ok := eq.(*Exception); ok {
			return be
		}
		if eq == False {
			r := Lt(a[i], b[i])
			if op == OpLt || op == OpLe {
				return r
			}
			if re, ok := r.(*Exception); ok {
				return re
			}
			switch op {
			case OpGt, OpGe:
				return boolHandle(r == False)
			case OpEq:
				return False
			case OpNe:
				return True
			}
		}
	}
	switch op {
	case OpEq:
		return boolHandle(len(a) == len(b))
	case OpNe:
		return boolHandle(len(a) != len(b))
	case OpLt:
		return boolHandle(len(a) < len(b))
	case OpLe:
		return boolHandle(len(a) <= len(b))
	case OpGe:
		return boolHandle(len(a) >= len(b))
	case OpGt:
		return boolHandle(len(a) > len(b))
	}
	return notImplemented()
}

func (t *Tuple) compare(op CompareOp, other Handle) Handle {
	if _, ok := other.(*Tuple); !ok {
		return notImplemented()
	}
	return sequenceCompare(op, t.items, other)
}

func (l *List) compare(op CompareOp, other Handle) Handle {
	if _, ok := other.(*List); !ok {
		return notImplemented()
	}
	return sequenceCompare(op, l.items, other)
}

func (t *Tuple) Len() int { return len(t.items) }

func (t *Tuple) GetIndex(i int) (Handle, *Exception) {
	idx, ex := normalizeIndex(i, len(t.items))
	if ex != nil {
		return nil, ex
	}
	v := t.items[idx]
	Incref(v)
	return v, nil
}

func (t *Tuple) GetSlice(start, stop, step int) (Handle, *Exception) {
	lo, _, st, n := sliceBounds(start, stop, step, len(t.items))
	out := make([]Handle, 0, n)
	for i, c := 0, lo; i < n; i, c = i+1, c+st {
		out = append(out, t.items[c])
	}
	IncrefN(out...)
	return newTuple(out), nil
}

func (l *List) Len() int { return len(l.items) }

func (l *List) GetIndex(i int) (Handle, *Exception) {
	idx, ex := normalizeIndex(i, len(l.items))
	if ex != nil {
		return nil, ex
	}
	v := l.items[idx]
	Incref(v)
	return v, nil
}

func (l *List) GetSlice(start, stop, step int) (Handle, *Exception) {
	lo, _, st, n := sliceBounds(start, stop, step, len(l.items))
	out := make([]Handle, 0, n)
	for i, c := 0, lo; i < n; i, c = i+1, c+st {
		out = append(out, l.items[c])
	}
	IncrefN(out...)
	l2 := &List{items: out}
	initHeader(&l2.Header, TagList, int32(len(out)), int32(len(out)))
	return l2, nil
}

func (l *List) SetIndex(i int, v Handle) *Exception {
	if !l.Tag().IsMutable() {
		return TypeError
	}
	idx, ex := normalizeIndex(i, len(l.items))
	if ex != nil {
		return ex
	}
	Incref(v)
	Decref(l.items[idx])
	l.items[idx] = v
	l.invalidateCachedHash()
	return nil
}

// Append implements spec.md §4.2's sequence mutator. A list frozen in
// place (Freeze flips the tag without changing the concrete type, see
// currentHash) must reject further mutation with TypeError rather than
// silently succeeding.
func (l *List) Append(v Handle) *Exception {
	if !l.Tag().IsMutable() {
		return TypeError
	}
	Incref(v)
	l.items = append(l.items, v)
	l.length = int32(len(l.items))
	l.invalidateCachedHash()
	return nil
}

func (l *List) Insert(i int, v Handle) *Exception {
	if !l.Tag().IsMutable() {
		return TypeError
	}
	if i < 0 {
		i += len(l.items)
	}
	if i < 0 {
		i = 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	Incref(v)
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	l.length = int32(len(l.items))
	l.invalidateCachedHash()
	return nil
}

func (l *List) PopIndex(i int) (Handle, *Exception) {
	if !l.Tag().IsMutable() {
		return nil, TypeError
	}
	idx, ex := normalizeIndex(i, len(l.items))
	if ex != nil {
		return nil, ex
	}
	v := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.length = int32(len(l.items))
	l.invalidateCachedHash()
	return v, nil
}

// Sort implements spec.md §4.2's sequence-suite `sort`: orders items in
// place via the six-comparison dispatch's Lt, stopping at the first
// comparison failure (e.g. incomparable types) and leaving the slice in
// whatever partial order sort.SliceStable had reached.
func (l *List) Sort() *Exception {
	if !l.Tag().IsMutable() {
		return TypeError
	}
	var failure *Exception
	sort.SliceStable(l.items, func(i, j int) bool {
		if failure != nil {
			return false
		}
		r := Lt(l.items[i], l.items[j])
		if e, ok := r.(*Exception); ok {
			failure = e
			return false
		}
		return r == True
	})
	if failure != nil {
		return failure
	}
	l.invalidateCachedHash()
	return nil
}

func (l *List) Reverse() *Exception {
	if !l.Tag().IsMutable() {
		return TypeError
	}
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.invalidateCachedHash()
	return nil
}

func (t *Tuple) Iter() *Iterator { return NewSequenceIterator(t) }
func (l *List) Iter() *Iterator  { return NewSequenceIterator(l) }

// ReverseIter implements spec.md §4.5's `iter_reversed`.
func (t *Tuple) ReverseIter() *Iterator { return NewSequenceReverseIterator(t) }
func (l *List) ReverseIter() *Iterator  { return NewSequenceReverseIterator(l) }

func (t *Tuple) traverseMut(visit func(*Handle)) {
	for i := range t.items {
		visit(&t.items[i])
	}
}

func (l *List) traverseMut(visit func(*Handle)) {
	for i := range l.items {
		visit(&l.items[i])
	}
}

func (t *Tuple) freeze() {}
func (t *Tuple) clone(mutable, deep bool, memo *copyMemo) Handle {
	return finishContainerClone(cloneItems(t.items, deep, memo), mutable)
}
func (t *Tuple) releaseContents() {}

func (l *List) freeze() {}
func (l *List) clone(mutable, deep bool, memo *copyMemo) Handle {
	if deep && mutable {
		// Register the clone in memo before copying the elements, so an
		// element that refers back to l resolves to this clone instead
		// of recursing without end.
		out := &List{}
		initHeader(&out.Header, TagList, 0, 0)
		memo.put(l, out)
		out.items = cloneItems(l.items, true, memo)
		out.length, out.alloclen = int32(len(out.items)), int32(len(out.items))
		return out
	}
	return finishContainerClone(cloneItems(l.items, deep, memo), mutable)
}
func (l *List) releaseContents() {
	DecrefN(l.items...)
	l.items = nil
}

// cloneItems returns the new container's element slice, each entry
// already owned by the clone (one reference held): a freshly increfed
// copy of the shared identities when shallow, or freshly deep-copied
// elements (which already hold their own reference) when deep.
func cloneItems(items []Handle, deep bool, memo *copyMemo) []Handle {
	out := make([]Handle, len(items))
	if !deep {
		copy(out, items)
		IncrefN(out...)
		return out
	}
	for i, it := range items {
		out[i] = deepCopy(it, it.Tag().IsMutable(), memo)
	}
	return out
}

// finishContainerClone builds the new Tuple or List directly over an
// already-owned items slice, without re-increfing (cloneItems already
// gave the caller one reference per element).
func finishContainerClone(out []Handle, mutable bool) Handle {
	if mutable {
		l := &List{items: out}
		initHeader(&l.Header, TagList, int32(len(out)), int32(len(out)))
		return l
	}
	if len(out) == 0 {
		Incref(emptyTuple)
		return emptyTuple
	}
	return newTuple(out)
}
