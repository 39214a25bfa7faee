package runtime

import "github.com/objrt/objrt/object"

// mapping_ops.go exposes spec.md §4.2's mapping suite (frozendict,
// dict).

type mappingLike interface {
	Handle
	Len() int
	GetItem(k Handle) (Handle, *object.Exception)
	Contains(k Handle) (bool, *object.Exception)
}

// MapLen returns a mapping's length (count of non-null values).
func MapLen(x Handle) (int, bool) {
	m, ok := x.(mappingLike)
	if !ok {
		return -1, false
	}
	return m.Len(), true
}

// MapGetItem returns the value for k, or KeyError if absent.
func MapGetItem(x Handle, k Handle) (Handle, *object.Exception) {
	m, ok := x.(mappingLike)
	if !ok {
		return nil, object.MethodError
	}
	return m.GetItem(k)
}

// MapContains reports whether k has a value in x.
func MapContains(x Handle, k Handle) (bool, *object.Exception) {
	m, ok := x.(mappingLike)
	if !ok {
		return false, object.MethodError
	}
	return m.Contains(k)
}

// MapSetItem inserts or replaces the value for k in a mutable Dict.
func MapSetItem(x Handle, k, v Handle) *object.Exception {
	d, ok := x.(*object.Dict)
	if !ok {
		return object.MethodError
	}
	return d.SetItem(k, v)
}

// MapPopItem removes and returns k's value from a mutable Dict.
func MapPopItem(x Handle, k Handle) (Handle, *object.Exception) {
	d, ok := x.(*object.Dict)
	if !ok {
		return nil, object.MethodError
	}
	return d.PopItem(k)
}

type defaultGetter interface {
	Handle
	GetDefault(k, def Handle) (Handle, *object.Exception)
}

// MapGetDefault returns k's value, or def if absent.
func MapGetDefault(x Handle, k, def Handle) (Handle, *object.Exception) {
	m, ok := x.(defaultGetter)
	if !ok {
		return nil, object.MethodError
	}
	return m.GetDefault(k, def)
}

type defaultSetter interface {
	Handle
	SetDefault(k, def Handle) (Handle, *object.Exception)
}

// MapSetDefault returns k's existing value, or inserts def and returns
// it if k is absent from a mutable Dict.
func MapSetDefault(x Handle, k, def Handle) (Handle, *object.Exception) {
	m, ok := x.(defaultSetter)
	if !ok {
		return nil, object.MethodError
	}
	return m.SetDefault(k, def)
}

type updater interface {
	Handle
	Update(other Handle) *object.Exception
}

// MapUpdate merges other's items into a mutable Dict, overwriting
// existing keys.
func MapUpdate(x Handle, other Handle) *object.Exception {
	m, ok := x.(updater)
	if !ok {
		return object.MethodError
	}
	return m.Update(other)
}

type itemsIterable interface {
	Handle
	ItemsIter() *Iterator
}

// MapIterItems returns an iterator over (key, value) Tuples.
func MapIterItems(x Handle) (*Iterator, *object.Exception) {
	m, ok := x.(itemsIterable)
	if !ok {
		return nil, object.MethodError
	}
	return m.ItemsIter(), nil
}

type valuesIterable interface {
	Handle
	ValuesIter() *Iterator
}

// MapIterValues returns an iterator over values only.
func MapIterValues(x Handle) (*Iterator, *object.Exception) {
	m, ok := x.(valuesIterable)
	if !ok {
		return nil, object.MethodError
	}
	return m.ValuesIter(), nil
}
