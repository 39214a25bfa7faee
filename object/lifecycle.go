package object

// lifecycleOps is implemented by every concrete type to support
// spec.md §4.3's freeze/copy/invalidate family. Scalars with no owned
// storage (Nil, Bool, Int, Float) get trivial implementations; every
// container type provides the real logic.
type lifecycleOps interface {
	Handle
	// freeze performs type-specific state compaction when transitioning
	// from mutable to immutable; called just before the tag bit is
	// flipped to the paired immutable tag.
	freeze()
	// clone returns a new object with the same value. mutable selects
	// whether the result is the mutable or immutable variant. When deep
	// is true, contained handles are cloned too, threading memo to
	// preserve aliasing and terminate cycles (spec.md §4.3).
	clone(mutable, deep bool, memo *copyMemo) Handle
	// releaseContents runs Invalidate's "clear contents, free any
	// externally owned buffer" step, decref'ing any contained handles.
	releaseContents()
}

// copyMemo maps a source object's identity to its already-constructed
// clone, so DeepCopy terminates on cycles and preserves aliasing, per
// spec.md §4.3's "memo mapping source identity to clone handle."
// (DeepFreeze and DeepInvalidate use a plain visited set instead.)
type copyMemo struct {
	seen map[*Header]Handle
}

func newCopyMemo() *copyMemo { return &copyMemo{seen: map[*Header]Handle{}} }

func (m *copyMemo) get(x Handle) (Handle, bool) {
	h, ok := m.seen[x.hdr()]
	return h, ok
}

func (m *copyMemo) put(x Handle, clone Handle) { m.seen[x.hdr()] = clone }

// Incref implements spec.md §4.3: immortal objects are untouched;
// otherwise the refcount is incremented. Overflow past refcntMax is
// forbidden per the Open Question decision in DESIGN.md — it panics
// rather than silently promoting to immortal, which would leak
// tracking permanently.
func Incref(x Handle) {
	h := x.hdr()
	for {
		cur := h.refcnt.Load()
		if cur == refcntImmortal {
			return
		}
		if cur >= refcntMax {
			panic("object: refcount overflow on Incref")
		}
		if h.refcnt.CompareAndSwap(cur, cur+1) {
			return
		}
	}
}

// IncrefN increments every handle's refcount.
func IncrefN(xs ...Handle) {
	for _, x := range xs {
		Incref(x)
	}
}

// Decref implements spec.md §4.3: immortal objects are untouched;
// otherwise the refcount is decremented, and dealloc runs when it
// reaches zero. Errors from dealloc are swallowed — dealloc is
// best-effort, per spec.md §4.3. The returned bool reports whether this
// call drove the refcount to zero and deallocated x, so a caller (the
// metrics sink) can count deallocations without tracking refcounts itself.
func Decref(x Handle) bool {
	h := x.hdr()
	for {
		cur := h.refcnt.Load()
		if cur == refcntImmortal {
			return false
		}
		if cur == 0 {
			return false
		}
		if h.refcnt.CompareAndSwap(cur, cur-1) {
			if cur-1 == 0 {
				deallocOf(x)
				return true
			}
			return false
		}
	}
}

// DecrefN decrements every handle's refcount.
func DecrefN(xs ...Handle) {
	for _, x := range xs {
		Decref(x)
	}
}

func deallocOf(x Handle) {
	defer func() { _ = recover() }() // dealloc is best-effort (spec.md §4.3)
	if lo, ok := x.(lifecycleOps); ok {
		lo.releaseContents()
	}
	if oo, ok := x.(objectOps); ok {
		oo.dealloc()
	}
}

// Freeze implements spec.md §4.3: no-op if already immutable; else
// calls the type's freeze hook, flips the tag's low bit, invalidates
// the cached hash, then computes and caches it.
func Freeze(x *Handle) {
	if !(*x).Tag().IsMutable() {
		return
	}
	lo, ok := (*x).(lifecycleOps)
	if !ok {
		return
	}
	h := (*x).hdr()
	lo.freeze()
	h.setTag(h.tag.Frozen())
	h.invalidateCachedHash()
	if _, ex := Hash(*x); ex != nil {
		// A type that can't be hashed once frozen (e.g. contains an
		// unhashable element) is left with an invalid cached hash;
		// Hash() will be recomputed (and re-fail) on next call.
		h.invalidateCachedHash()
	}
}

// DeepFreeze implements spec.md §4.3: traverse with a memo set of
// visited identities, freezing the current node before recursing into
// its contained handles.
func DeepFreeze(x *Handle) {
	memo := map[*Header]bool{}
	deepFreeze(x, memo)
}

func deepFreeze(x *Handle, memo map[*Header]bool) {
	h := (*x).hdr()
	if memo[h] {
		return
	}
	memo[h] = true
	Freeze(x)
	if tv, ok := (*x).(traversable); ok {
		tv.traverseMut(func(child *Handle) { deepFreeze(child, memo) })
	}
}

// traversable is implemented by container types that hold other
// handles, letting DeepFreeze/DeepCopy/DeepInvalidate recurse without
// each container reimplementing the traversal driver.
type traversable interface {
	Handle
	// traverseMut calls visit once per contained handle slot, passing a
	// pointer so the visitor (DeepFreeze) can observe the slot in place.
	// Containers that only ever hold immutable, already-frozen elements
	// (e.g. a Tuple after construction) may still call visit so nested
	// structures are reached.
	traverseMut(visit func(*Handle))
}

// UnfrozenCopy returns a mutable clone (or, for types with no mutable
// variant, an immutable clone), per spec.md §4.3. Shallow: contained
// handles are shared (incref'd), not cloned.
func UnfrozenCopy(x Handle) Handle {
	if ex := CheckUsable(x); ex != nil {
		return ex
	}
	if e, ok := Propagate(x); ok {
		return e
	}
	lo, ok := x.(lifecycleOps)
	if !ok {
		return MethodError
	}
	return lo.clone(true, false, nil)
}

// FrozenCopy returns an immutable clone, per spec.md §4.3.
func FrozenCopy(x Handle) Handle {
	if ex := CheckUsable(x); ex != nil {
		return ex
	}
	if e, ok := Propagate(x); ok {
		return e
	}
	lo, ok := x.(lifecycleOps)
	if !ok {
		return MethodError
	}
	return lo.clone(false, false, nil)
}

// Copy returns a clone matching x's current mutability.
func Copy(x Handle) Handle {
	if ex := CheckUsable(x); ex != nil {
		return ex
	}
	if e, ok := Propagate(x); ok {
		return e
	}
	lo, ok := x.(lifecycleOps)
	if !ok {
		return MethodError
	}
	return lo.clone(x.Tag().IsMutable(), false, nil)
}

// DeepCopy returns a structural clone, using a memo of visited source
// identities to preserve aliasing and terminate cycles, per spec.md
// §4.3. Deep copy of a hashable immortal may return the same handle.
func DeepCopy(x Handle) Handle {
	if ex := CheckUsable(x); ex != nil {
		return ex
	}
	if e, ok := Propagate(x); ok {
		return e
	}
	memo := newCopyMemo()
	return deepCopy(x, x.Tag().IsMutable(), memo)
}

func deepCopy(x Handle, mutable bool, memo *copyMemo) Handle {
	if x.hdr().Immortal() {
		return x
	}
	if existing, ok := memo.get(x); ok {
		Incref(existing)
		return existing
	}
	lo, ok := x.(lifecycleOps)
	if !ok {
		return MethodError
	}
	clone := lo.clone(mutable, true, memo)
	memo.put(x, clone)
	return clone
}

// Invalidate implements spec.md §4.3: run the type's invalidate hook
// (clear-semantics on contents, freeing externally owned buffers), then
// transmute the tag to "invalidated". All subsequent dispatch on x
// returns InvalidatedError.
func Invalidate(x *Handle) {
	if ex := CheckUsable(*x); ex != nil {
		return
	}
	if lo, ok := (*x).(lifecycleOps); ok {
		lo.releaseContents()
	}
	h := (*x).hdr()
	if h.tag.IsMutable() {
		h.setTag(TagInvalidatedM)
	} else {
		h.setTag(TagInvalidated)
	}
	h.invalidateCachedHash()
}

// DeepInvalidate invalidates x and, recursively, everything it
// contains, using a memo to avoid revisiting cycles.
func DeepInvalidate(x *Handle) {
	memo := map[*Header]bool{}
	deepInvalidate(x, memo)
}

func deepInvalidate(x *Handle, memo map[*Header]bool) {
	h := (*x).hdr()
	if memo[h] {
		return
	}
	memo[h] = true
	if tv, ok := (*x).(traversable); ok {
		tv.traverseMut(func(child *Handle) { deepInvalidate(child, memo) })
	}
	Invalidate(x)
}
