package runtime

import "github.com/objrt/objrt/object"

// generic_ops.go re-exports object's universal operations (spec.md
// §4.2's object suite plus hash/compare) through the runtime package,
// the only layer host code is meant to call, recording metrics around
// the hot dispatch paths that benefit from visibility (hash, compare).

// Handle is objrt's single opaque handle type.
type Handle = object.Handle

// Incref increments x's reference count.
func Incref(x Handle) { object.Incref(x) }

// Decref decrements x's reference count, deallocating at zero.
func Decref(x Handle) {
	if object.Decref(x) {
		metrics.incDealloc(object.TypeOf(x).Name())
	}
}

// Hash returns x's cached hash; only defined for immutable handles.
func Hash(x Handle) (int64, *object.Exception) {
	metrics.incHashCalls()
	return object.Hash(x)
}

// CurrentHash computes x's hash uncached, defined for all handles.
func CurrentHash(x Handle) (int64, *object.Exception) {
	metrics.incHashCalls()
	return object.CurrentHash(x)
}

// Eq, Ne, Lt, Le, Ge, Gt are the six generic comparison operations.
func Eq(x, y Handle) Handle { metrics.incCompareCalls(); return object.Eq(x, y) }
func Ne(x, y Handle) Handle { metrics.incCompareCalls(); return object.Ne(x, y) }
func Lt(x, y Handle) Handle { metrics.incCompareCalls(); return object.Lt(x, y) }
func Le(x, y Handle) Handle { metrics.incCompareCalls(); return object.Le(x, y) }
func Ge(x, y Handle) Handle { metrics.incCompareCalls(); return object.Ge(x, y) }
func Gt(x, y Handle) Handle { metrics.incCompareCalls(); return object.Gt(x, y) }

// Add, Sub, Mul, TrueDivide, FloorDivide, Modulo are the numeric
// operations across the int/float family.
func Add(x, y Handle) Handle         { return object.Add(x, y) }
func Sub(x, y Handle) Handle         { return object.Sub(x, y) }
func Mul(x, y Handle) Handle         { return object.Mul(x, y) }
func TrueDivide(x, y Handle) Handle  { return object.TrueDivide(x, y) }
func FloorDivide(x, y Handle) Handle { return object.FloorDivide(x, y) }
func Modulo(x, y Handle) Handle      { return object.Modulo(x, y) }

// Freeze, DeepFreeze, UnfrozenCopy, FrozenCopy, Copy, DeepCopy,
// Invalidate, DeepInvalidate implement spec.md §4.3's lifecycle family.
func Freeze(x *Handle) { object.Freeze(x) }
func DeepFreeze(x *Handle) { object.DeepFreeze(x) }
func UnfrozenCopy(x Handle) Handle { return object.UnfrozenCopy(x) }
func FrozenCopy(x Handle) Handle   { return object.FrozenCopy(x) }
func Copy(x Handle) Handle         { return object.Copy(x) }
func DeepCopy(x Handle) Handle     { return object.DeepCopy(x) }
func Invalidate(x *Handle) { object.Invalidate(x) }
func DeepInvalidate(x *Handle) { object.DeepInvalidate(x) }

// Propagate implements spec.md §7's universal exception-propagation
// rule.
func Propagate(xs ...Handle) (Handle, bool) { return object.Propagate(xs...) }

// IsException, IsExceptionOf report whether x is (of) an exception.
func IsException(x Handle) bool                     { return object.IsException(x) }
func IsExceptionOf(x Handle, e *object.Exception) bool { return object.IsExceptionOf(x, e) }

// TypeOf returns x's canonical Type descriptor.
func TypeOf(x Handle) *object.Type { return object.TypeOf(x) }

// Intern returns the canonical immortal Str for s, deduping concurrent
// construction of the same string across goroutines.
func Intern(s string) *object.Str {
	str := object.Intern(s)
	metrics.setInterned(object.InternedLen())
	return str
}

// InternedLen returns the number of distinct strings ever interned.
func InternedLen() int { return object.InternedLen() }

// Bool implements spec.md §6's generic `bool`: every concrete type's
// own boolValue, reached through object.BoolOf the way Hash reaches
// currentHash.
func Bool(x Handle) (bool, *object.Exception) { return object.BoolOf(x) }

// Not is the logical negation of Bool.
func Not(x Handle) (bool, *object.Exception) {
	v, ex := object.BoolOf(x)
	if ex != nil {
		return false, ex
	}
	return !v, nil
}

// OrN implements spec.md §6's `or_n`: the first truthy handle in xs, or
// the last handle if none are truthy. The n-ary generalization of
// nohtyP's yp_orN over already-materialized handles; unlike a language
// `or` expression there is nothing left unevaluated to skip, so this
// just walks xs in order.
func OrN(xs ...Handle) Handle {
	if len(xs) == 0 {
		return object.False
	}
	for _, x := range xs[:len(xs)-1] {
		if e, ok := object.Propagate(x); ok {
			return e
		}
		truthy, ex := object.BoolOf(x)
		if ex != nil {
			return ex
		}
		if truthy {
			return x
		}
	}
	return xs[len(xs)-1]
}

// AndN implements spec.md §6's `and_n`: the first falsy handle in xs, or
// the last handle if all are truthy. Mirrors nohtyP's yp_andN.
func AndN(xs ...Handle) Handle {
	if len(xs) == 0 {
		return object.True
	}
	for _, x := range xs[:len(xs)-1] {
		if e, ok := object.Propagate(x); ok {
			return e
		}
		truthy, ex := object.BoolOf(x)
		if ex != nil {
			return ex
		}
		if !truthy {
			return x
		}
	}
	return xs[len(xs)-1]
}

// Any implements spec.md §6's `any`: True if any element of iterable is
// truthy, stopping at the first one; False if iterable is empty.
func Any(iterable Handle) (bool, *object.Exception) {
	it := Iter(iterable)
	if it == nil {
		return false, object.MethodError
	}
	for {
		v, ex, ok := it.Next()
		if ex != nil {
			return false, ex
		}
		if !ok {
			return false, nil
		}
		truthy, bex := object.BoolOf(v)
		Decref(v)
		if bex != nil {
			return false, bex
		}
		if truthy {
			return true, nil
		}
	}
}

// All implements spec.md §6's `all`: True if every element of iterable
// is truthy (or iterable is empty), stopping at the first falsy one.
func All(iterable Handle) (bool, *object.Exception) {
	it := Iter(iterable)
	if it == nil {
		return false, object.MethodError
	}
	for {
		v, ex, ok := it.Next()
		if ex != nil {
			return false, ex
		}
		if !ok {
			return true, nil
		}
		truthy, bex := object.BoolOf(v)
		Decref(v)
		if bex != nil {
			return false, bex
		}
		if !truthy {
			return false, nil
		}
	}
}

// Len implements spec.md §6's generic `len`, dispatching to whichever
// per-family length accessor x supports.
func Len(x Handle) (int, *object.Exception) {
	if ex := object.CheckUsable(x); ex != nil {
		return 0, ex
	}
	if e, ok := object.Propagate(x); ok {
		return 0, e.(*object.Exception)
	}
	if n, ok := SeqLen(x); ok {
		return n, nil
	}
	if n, ok := SetLen(x); ok {
		return n, nil
	}
	if n, ok := MapLen(x); ok {
		return n, nil
	}
	return 0, object.MethodError
}
