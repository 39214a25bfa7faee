package runtime

import "github.com/objrt/objrt/object"

// sequence_ops.go exposes spec.md §4.2's sequence suite (tuple, list,
// bytes, bytearray, str, chrarray) uniformly: the concrete type is
// erased behind the interfaces these functions type-assert against,
// matching the teacher's habit of a thin typed wrapper over the
// package doing the real work.

type sequenceLike interface {
	Handle
	Len() int
	GetIndex(i int) (Handle, *object.Exception)
	GetSlice(start, stop, step int) (Handle, *object.Exception)
}

// SeqLen returns a sequence's length, or (-1, false) if x is not one.
func SeqLen(x Handle) (int, bool) {
	s, ok := x.(sequenceLike)
	if !ok {
		return -1, false
	}
	return s.Len(), true
}

// SeqGetIndex returns the element at i, per spec.md's negative-index
// and IndexError rules.
func SeqGetIndex(x Handle, i int) (Handle, *object.Exception) {
	s, ok := x.(sequenceLike)
	if !ok {
		return nil, object.MethodError
	}
	return s.GetIndex(i)
}

// SeqGetSlice returns the slice [start:stop:step], per spec.md's
// Python-style slice semantics.
func SeqGetSlice(x Handle, start, stop, step int) (Handle, *object.Exception) {
	s, ok := x.(sequenceLike)
	if !ok {
		return nil, object.MethodError
	}
	return s.GetSlice(start, stop, step)
}

type mutableSequenceLike interface {
	sequenceLike
	SetIndex(i int, v Handle) *object.Exception
	Append(v Handle) *object.Exception
	Insert(i int, v Handle) *object.Exception
	PopIndex(i int) (Handle, *object.Exception)
	Reverse() *object.Exception
}

type sortableLike interface {
	Handle
	Sort() *object.Exception
}

// SeqSetIndex replaces the element at i in a mutable sequence.
func SeqSetIndex(x Handle, i int, v Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	return s.SetIndex(i, v)
}

// SeqAppend appends v to a mutable sequence.
func SeqAppend(x Handle, v Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	return s.Append(v)
}

// SeqInsert inserts v at index i in a mutable sequence.
func SeqInsert(x Handle, i int, v Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	return s.Insert(i, v)
}

// SeqPopIndex removes and returns the element at i.
func SeqPopIndex(x Handle, i int) (Handle, *object.Exception) {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return nil, object.MethodError
	}
	return s.PopIndex(i)
}

// SeqReverse reverses a mutable sequence in place.
func SeqReverse(x Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	return s.Reverse()
}

// SeqSort orders a mutable sequence in place, spec.md §4.2's sequence
// suite `sort`.
func SeqSort(x Handle) *object.Exception {
	s, ok := x.(sortableLike)
	if !ok {
		return object.MethodError
	}
	return s.Sort()
}

// SeqFind returns the index of the first element equal to v, or -1 if
// none is found, spec.md §4.2's sequence suite `find`.
func SeqFind(x Handle, v Handle) (int, *object.Exception) {
	s, ok := x.(sequenceLike)
	if !ok {
		return -1, object.MethodError
	}
	n := s.Len()
	for i := 0; i < n; i++ {
		e, ex := s.GetIndex(i)
		if ex != nil {
			return -1, ex
		}
		r := Eq(e, v)
		Decref(e)
		if be, ok := r.(*object.Exception); ok {
			return -1, be
		}
		if r == object.True {
			return i, nil
		}
	}
	return -1, nil
}

// SeqIndex is SeqFind, raising ValueError instead of returning -1 when
// v is not present, spec.md §4.2's sequence suite `index`.
func SeqIndex(x Handle, v Handle) (int, *object.Exception) {
	i, ex := SeqFind(x, v)
	if ex != nil {
		return -1, ex
	}
	if i < 0 {
		return -1, object.ValueError
	}
	return i, nil
}

// SeqCount returns how many elements equal v, spec.md §4.2's sequence
// suite `count`.
func SeqCount(x Handle, v Handle) (int, *object.Exception) {
	s, ok := x.(sequenceLike)
	if !ok {
		return 0, object.MethodError
	}
	n := s.Len()
	count := 0
	for i := 0; i < n; i++ {
		e, ex := s.GetIndex(i)
		if ex != nil {
			return 0, ex
		}
		r := Eq(e, v)
		Decref(e)
		if be, ok := r.(*object.Exception); ok {
			return 0, be
		}
		if r == object.True {
			count++
		}
	}
	return count, nil
}

// SeqExtend appends every element of an iterable to a mutable
// sequence, in order, spec.md §4.2's sequence suite `extend`.
func SeqExtend(x Handle, iterable Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	vs, ex := drainIterable(iterable)
	if ex != nil {
		return ex
	}
	for _, v := range vs {
		if ex := s.Append(v); ex != nil {
			return ex
		}
	}
	return nil
}

// SeqIRepeat repeats a mutable sequence's current contents n times in
// place (n <= 0 empties it), spec.md §4.2's sequence suite `irepeat`.
func SeqIRepeat(x Handle, n int) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	orig := s.Len()
	if n <= 0 {
		for s.Len() > 0 {
			if _, ex := s.PopIndex(s.Len() - 1); ex != nil {
				return ex
			}
		}
		return nil
	}
	for rep := 1; rep < n; rep++ {
		for i := 0; i < orig; i++ {
			e, ex := s.GetIndex(i)
			if ex != nil {
				return ex
			}
			ex = s.Append(e)
			Decref(e)
			if ex != nil {
				return ex
			}
		}
	}
	return nil
}

// SeqRemove deletes the first element equal to v, raising ValueError
// if none is found, spec.md §4.2's sequence suite `remove`.
func SeqRemove(x Handle, v Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	i, ex := SeqFind(x, v)
	if ex != nil {
		return ex
	}
	if i < 0 {
		return object.ValueError
	}
	_, ex = s.PopIndex(i)
	return ex
}

// SeqDelIndex deletes the element at i, discarding it, spec.md §4.2's
// sequence suite `delindex`.
func SeqDelIndex(x Handle, i int) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	v, ex := s.PopIndex(i)
	if ex != nil {
		return ex
	}
	Decref(v)
	return nil
}

// pySliceIndices returns, in traversal order, the concrete indices a
// [start:stop:step] slice touches for a sequence of the given length.
// Mirrors object.sliceBounds's arithmetic; reproduced here since
// runtime's mutators only see the public sequenceLike interface.
func pySliceIndices(start, stop, step, length int) []int {
	if step == 0 {
		step = 1
	}
	lo, hi := start, stop
	if step > 0 {
		if lo < 0 {
			lo += length
		}
		if lo < 0 {
			lo = 0
		}
		if lo > length {
			lo = length
		}
		if hi < 0 {
			hi += length
		}
		if hi < 0 {
			hi = 0
		}
		if hi > length {
			hi = length
		}
		var out []int
		for i := lo; i < hi; i += step {
			out = append(out, i)
		}
		return out
	}
	if lo < 0 {
		lo += length
	}
	if lo >= length {
		lo = length - 1
	}
	if hi < -1 {
		hi += length
	}
	if hi < -1 {
		hi = -1
	}
	var out []int
	for i := lo; i > hi; i += step {
		if i < 0 || i >= length {
			continue
		}
		out = append(out, i)
	}
	return out
}

// SeqDelSlice deletes every element in [start:stop:step] from a
// mutable sequence, spec.md §4.2's sequence suite `delslice`.
func SeqDelSlice(x Handle, start, stop, step int) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	idx := pySliceIndices(start, stop, step, s.Len())
	// Delete back-to-front so earlier indices stay valid.
	for i := len(idx) - 1; i >= 0; i-- {
		v, ex := s.PopIndex(idx[i])
		if ex != nil {
			return ex
		}
		Decref(v)
	}
	return nil
}

// SeqSetSlice replaces [start:stop:step] with the elements of
// iterable, spec.md §4.2's sequence suite `setslice`. An extended
// slice (step != 1) requires the replacement to supply exactly as
// many elements as the slice touches; a contiguous slice (step == 1)
// accepts a replacement of any length, per Python's list-slice rules.
func SeqSetSlice(x Handle, start, stop, step int, iterable Handle) *object.Exception {
	s, ok := x.(mutableSequenceLike)
	if !ok {
		return object.MethodError
	}
	idx := pySliceIndices(start, stop, step, s.Len())
	values, ex := drainIterable(iterable)
	if ex != nil {
		return ex
	}
	if step != 1 {
		if len(values) != len(idx) {
			return object.ValueError
		}
		for i, at := range idx {
			if ex := s.SetIndex(at, values[i]); ex != nil {
				return ex
			}
		}
		return nil
	}
	insertAt := start
	if insertAt < 0 {
		insertAt += s.Len()
	}
	if insertAt < 0 {
		insertAt = 0
	}
	if insertAt > s.Len() {
		insertAt = s.Len()
	}
	for i := len(idx) - 1; i >= 0; i-- {
		v, ex := s.PopIndex(idx[i])
		if ex != nil {
			return ex
		}
		Decref(v)
	}
	for i, v := range values {
		if ex := s.Insert(insertAt+i, v); ex != nil {
			return ex
		}
	}
	return nil
}
