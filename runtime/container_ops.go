package runtime

import "github.com/objrt/objrt/object"

// container_ops.go exposes spec.md §4.2's generic "Container suite"
// (contains/in/not_in, push, clear, pop) that sits beneath the more
// specific sequence/set/mapping suites in the dispatch table: each
// concrete type already implements push/pop/contains its own way
// (SeqAppend, SetAdd, MapSetItem, ...); these entry points pick the
// right one by type-switching, the way a dispatch-table slot would.

// Contains reports whether v is a member of x, trying whichever of
// the set/mapping/sequence suites x implements, spec.md §6's
// `contains`/`in`.
func Contains(x Handle, v Handle) (bool, *object.Exception) {
	if s, ok := x.(setLike); ok {
		return s.Contains(v)
	}
	if m, ok := x.(mappingLike); ok {
		return m.Contains(v)
	}
	if _, ok := x.(sequenceLike); ok {
		i, ex := SeqFind(x, v)
		if ex != nil {
			return false, ex
		}
		return i >= 0, nil
	}
	return false, object.MethodError
}

// NotContains is spec.md §6's `not_in`: the logical negation of
// Contains, surfaced separately since the host-facing macro layer asks
// for it by name rather than just negating `contains`.
func NotContains(x Handle, v Handle) (bool, *object.Exception) {
	has, ex := Contains(x, v)
	if ex != nil {
		return false, ex
	}
	return !has, nil
}

// Push adds v to a mutable container in whatever way is idiomatic for
// its kind: appended to a mutable sequence, added to a mutable set,
// spec.md §6's generic `push`.
func Push(x Handle, v Handle) *object.Exception {
	if s, ok := x.(mutableSequenceLike); ok {
		return s.Append(v)
	}
	if s, ok := x.(*object.Set); ok {
		return s.Add(v)
	}
	return object.MethodError
}

// Pop removes and returns an element from a mutable container: the
// last element of a mutable sequence, or an arbitrary element of a
// mutable set, spec.md §6's generic `pop`.
func Pop(x Handle) (Handle, *object.Exception) {
	if s, ok := x.(mutableSequenceLike); ok {
		n := s.Len()
		if n == 0 {
			return nil, object.IndexError
		}
		return s.PopIndex(n - 1)
	}
	if s, ok := x.(*object.Set); ok {
		return s.Pop()
	}
	return nil, object.MethodError
}

// Clear empties a mutable container in place, spec.md §6's generic
// `clear`.
func Clear(x Handle) *object.Exception {
	switch v := x.(type) {
	case mutableSequenceLike:
		for v.Len() > 0 {
			popped, ex := v.PopIndex(v.Len() - 1)
			if ex != nil {
				return ex
			}
			Decref(popped)
		}
		return nil
	case *object.Set:
		return v.Clear()
	case *object.Dict:
		return v.Clear()
	}
	return object.MethodError
}
