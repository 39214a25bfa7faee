package runtime

import "github.com/objrt/objrt/object"

// conversion.go implements spec.md's supplemented nohtyP-derived
// naming convention: `_C` suffixed constructors build an objrt handle
// from a plain Go value (the embedding host's "C world"), while
// `AsXxxC` extractors go the other way, returning a (value, ok) pair
// instead of nohtyP's out-parameter-plus-exception-return shape, which
// Go's multi-value returns express directly.

// NilFromC returns the sole None singleton, increfed for the caller.
func NilFromC() Handle {
	object.Incref(object.None)
	return object.None
}

// BoolFromC returns the canonical True/False singleton.
func BoolFromC(v bool) Handle { return object.BoolFromC(v) }

// IntFromC constructs (or selects, if interned) an immutable Int.
func IntFromC(v int64) Handle { metrics.incAlloc("int"); return object.IntFromC(v) }

// IntStoreFromC constructs a mutable IntStore.
func IntStoreFromC(v int64) Handle { metrics.incAlloc("intstore"); return object.IntStoreFromC(v) }

// FloatFromC constructs an immutable Float.
func FloatFromC(v float64) Handle { metrics.incAlloc("float"); return object.FloatFromC(v) }

// FloatStoreFromC constructs a mutable FloatStore.
func FloatStoreFromC(v float64) Handle {
	metrics.incAlloc("floatstore")
	return object.FloatStoreFromC(v)
}

// BytesFromC constructs an immutable Bytes copying b.
func BytesFromC(b []byte) Handle { metrics.incAlloc("bytes"); return object.BytesFromC(b) }

// ByteArrayFromC constructs a mutable ByteArray copying b.
func ByteArrayFromC(b []byte) Handle {
	metrics.incAlloc("bytearray")
	return object.ByteArrayFromC(b)
}

// StrFromC constructs an immutable Str from a Go string.
func StrFromC(s string) Handle { metrics.incAlloc("str"); return object.StrFromC(s) }

// ChrArrayFromC constructs a mutable ChrArray from a Go string.
func ChrArrayFromC(s string) Handle { metrics.incAlloc("chrarray"); return object.ChrArrayFromC(s) }

// ChrFromCodepoint constructs the one-character immutable Str for a
// single Unicode code point, raising UnicodeError for an invalid one.
func ChrFromCodepoint(cp int64) (Handle, *object.Exception) {
	s, ex := object.ChrFromCodepoint(cp)
	if ex != nil {
		return nil, ex
	}
	metrics.incAlloc("str")
	return s, nil
}

// TupleFromC constructs an immutable Tuple over items.
func TupleFromC(items ...Handle) Handle { metrics.incAlloc("tuple"); return object.TupleFromC(items...) }

// ListFromC constructs a mutable List over items.
func ListFromC(items ...Handle) Handle { metrics.incAlloc("list"); return object.ListFromC(items...) }

// FrozenSetFromC constructs an immutable FrozenSet over items.
func FrozenSetFromC(items ...Handle) (Handle, *object.Exception) {
	metrics.incAlloc("frozenset")
	return object.FrozenSetFromC(items...)
}

// SetFromC constructs a mutable Set over items.
func SetFromC(items ...Handle) (Handle, *object.Exception) {
	metrics.incAlloc("set")
	return object.SetFromC(items...)
}

// FrozenDictFromC constructs an immutable FrozenDict from parallel
// key/value slices.
func FrozenDictFromC(keys, values []Handle) (Handle, *object.Exception) {
	metrics.incAlloc("frozendict")
	return object.FrozenDictFromC(keys, values)
}

// DictFromC constructs a mutable Dict from parallel key/value slices.
func DictFromC(keys, values []Handle) (Handle, *object.Exception) {
	metrics.incAlloc("dict")
	return object.DictFromC(keys, values)
}

// drainIterable converts any iterable handle to a slice of its
// elements, the shared step behind every iterable-consuming
// constructor (tuple_from, list_from, frozenset_from, set_from per
// spec.md §6; there is no dict_from). The returned elements are still owned by
// the source iterator's Incref, not by the caller.
func drainIterable(x Handle) ([]Handle, *object.Exception) {
	it := Iter(x)
	if it == nil {
		return nil, object.MethodError
	}
	return Drain(it)
}

// TupleFrom constructs an immutable Tuple from any iterable's
// elements, spec.md §6's tuple_from.
func TupleFrom(x Handle) (Handle, *object.Exception) {
	items, ex := drainIterable(x)
	if ex != nil {
		return nil, ex
	}
	return TupleFromC(items...), nil
}

// ListFrom constructs a mutable List from any iterable's elements,
// spec.md §6's list_from.
func ListFrom(x Handle) (Handle, *object.Exception) {
	items, ex := drainIterable(x)
	if ex != nil {
		return nil, ex
	}
	return ListFromC(items...), nil
}

// FrozenSetFrom constructs an immutable FrozenSet from any iterable's
// elements, spec.md §6's frozenset_from.
func FrozenSetFrom(x Handle) (Handle, *object.Exception) {
	items, ex := drainIterable(x)
	if ex != nil {
		return nil, ex
	}
	return FrozenSetFromC(items...)
}

// SetFrom constructs a mutable Set from any iterable's elements,
// spec.md §6's set_from.
func SetFrom(x Handle) (Handle, *object.Exception) {
	items, ex := drainIterable(x)
	if ex != nil {
		return nil, ex
	}
	return SetFromC(items...)
}

// AsIntC extracts an int64 from x if x is any member of the int
// family (or bool). ok is false (and the returned value 0) if x
// cannot be viewed as an integer.
func AsIntC(x Handle) (int64, bool) {
	switch v := x.(type) {
	case *object.Int:
		return v.Value(), true
	case *object.IntStore:
		return v.Value(), true
	case *object.Bool:
		if v.Value() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// intNBounds returns the inclusive [min, max] range a fixed-width
// integer of the given bit width and signedness can hold, spec.md
// §6's `as_intN_c` family (N = 8, 16, 32, 64).
func intNBounds(bits int, signed bool) (int64, uint64) {
	if signed {
		return -(int64(1) << (bits - 1)), uint64(1)<<(bits-1) - 1
	}
	return 0, uint64(1)<<bits - 1
}

// AsIntNC extracts x's integer value and range-checks it against a
// fixed-width signed or unsigned integer, spec.md §6's `as_intN_c`
// family. Returns OverflowError if the value does not fit.
func AsIntNC(x Handle, bits int, signed bool) (int64, *object.Exception) {
	v, ok := AsIntC(x)
	if !ok {
		return 0, object.TypeError
	}
	lo, hi := intNBounds(bits, signed)
	if signed {
		if v < lo || v > int64(hi) {
			return 0, object.OverflowError
		}
		return v, nil
	}
	if v < 0 || uint64(v) > hi {
		return 0, object.OverflowError
	}
	return v, nil
}

// AsSSizeC extracts x's integer value as a host-native signed size,
// spec.md §6's `as_ssize_c`. Overflow of the host's int width raises
// OverflowError.
func AsSSizeC(x Handle) (int, *object.Exception) {
	v, ex := AsIntNC(x, 64, true)
	if ex != nil {
		return 0, ex
	}
	if int64(int(v)) != v {
		return 0, object.OverflowError
	}
	return int(v), nil
}

// AsHashC returns x's hash value as a C-facing int64, spec.md §6's
// `as_hash_c`; an equivalent to Hash kept under the `_c` naming
// convention for parity with the rest of the conversion family.
func AsHashC(x Handle) (int64, *object.Exception) { return Hash(x) }

// AsFloatC extracts a float64 from x if x is any member of the
// int/float family.
func AsFloatC(x Handle) (float64, bool) {
	switch v := x.(type) {
	case *object.Float:
		return v.Value(), true
	case *object.FloatStore:
		return v.Value(), true
	}
	if i, ok := AsIntC(x); ok {
		return float64(i), true
	}
	return 0, false
}

// AsBytesC extracts the underlying byte slice if x is bytes or
// bytearray. The returned slice must not be mutated by the caller.
func AsBytesC(x Handle) ([]byte, bool) {
	switch v := x.(type) {
	case *object.Bytes:
		return v.Bytes(), true
	case *object.ByteArray:
		return v.Bytes(), true
	}
	return nil, false
}

// AsStringC extracts the Go string form if x is str or chrarray.
func AsStringC(x Handle) (string, bool) {
	switch v := x.(type) {
	case *object.Str:
		return v.String(), true
	case *object.ChrArray:
		return v.String(), true
	}
	return "", false
}
