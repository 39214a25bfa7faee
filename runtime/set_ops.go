package runtime

import "github.com/objrt/objrt/object"

// set_ops.go exposes spec.md §4.2's set suite (frozenset, set).

type setLike interface {
	Handle
	Len() int
	Contains(v Handle) (bool, *object.Exception)
	IsDisjoint(other Handle) (bool, *object.Exception)
	IsSubsetOf(other Handle) (bool, *object.Exception)
}

// SetLen returns a set's cardinality.
func SetLen(x Handle) (int, bool) {
	s, ok := x.(setLike)
	if !ok {
		return -1, false
	}
	return s.Len(), true
}

// SetContains reports whether v is a member.
func SetContains(x Handle, v Handle) (bool, *object.Exception) {
	s, ok := x.(setLike)
	if !ok {
		return false, object.MethodError
	}
	return s.Contains(v)
}

// SetIsDisjoint reports whether x and other share no elements.
func SetIsDisjoint(x, other Handle) (bool, *object.Exception) {
	s, ok := x.(setLike)
	if !ok {
		return false, object.MethodError
	}
	return s.IsDisjoint(other)
}

// SetIsSubsetOf reports whether every element of x is in other.
func SetIsSubsetOf(x, other Handle) (bool, *object.Exception) {
	s, ok := x.(setLike)
	if !ok {
		return false, object.MethodError
	}
	return s.IsSubsetOf(other)
}

// SetUnion returns a new immutable FrozenSet holding the union of a
// and b, per spec.md §4.6's UpdateFrom engine primitive.
func SetUnion(a, b Handle) Handle { return object.Union(a, b) }

// SetIntersection returns a new immutable FrozenSet holding the
// elements a and b share, spec.md §6's intersection_n.
func SetIntersection(a, b Handle) Handle { return object.Intersection(a, b) }

// SetDifference returns a new immutable FrozenSet holding a's elements
// that are not in b, spec.md §6's difference_n.
func SetDifference(a, b Handle) Handle { return object.Difference(a, b) }

// SetSymmetricDifference returns a new immutable FrozenSet holding
// elements that are in exactly one of a or b, spec.md §6's
// symmetric_difference.
func SetSymmetricDifference(a, b Handle) Handle { return object.SymmetricDifference(a, b) }

// SetAdd inserts v into a mutable Set.
func SetAdd(x Handle, v Handle) *object.Exception {
	s, ok := x.(*object.Set)
	if !ok {
		return object.MethodError
	}
	return s.Add(v)
}

// SetDiscard removes v from a mutable Set if present.
func SetDiscard(x Handle, v Handle) *object.Exception {
	s, ok := x.(*object.Set)
	if !ok {
		return object.MethodError
	}
	return s.Discard(v)
}

// SetPop removes and returns an arbitrary element.
func SetPop(x Handle) (Handle, *object.Exception) {
	s, ok := x.(*object.Set)
	if !ok {
		return nil, object.MethodError
	}
	return s.Pop()
}

// SetUpdate adds every member of other into a mutable Set in place,
// spec.md §6's `update`.
func SetUpdate(x Handle, other Handle) *object.Exception {
	s, ok := x.(*object.Set)
	if !ok {
		return object.MethodError
	}
	return s.UpdateFrom(other)
}

// SetDifferenceUpdate removes from a mutable Set every member also
// present in other, spec.md §6's `difference_update`.
func SetDifferenceUpdate(x Handle, other Handle) *object.Exception {
	s, ok := x.(*object.Set)
	if !ok {
		return object.MethodError
	}
	return s.DifferenceUpdateFrom(other)
}

// SetIntersectionUpdate removes from a mutable Set every member not
// present in other, spec.md §6's `intersection_update`.
func SetIntersectionUpdate(x Handle, other Handle) *object.Exception {
	s, ok := x.(*object.Set)
	if !ok {
		return object.MethodError
	}
	return s.IntersectionUpdateFrom(other)
}

// SetSymmetricDifferenceUpdate leaves a mutable Set holding members
// present in exactly one of x or other, spec.md §6's
// `symmetric_difference_update`.
func SetSymmetricDifferenceUpdate(x Handle, other Handle) *object.Exception {
	s, ok := x.(*object.Set)
	if !ok {
		return object.MethodError
	}
	return s.SymmetricDifferenceUpdateFrom(other)
}
