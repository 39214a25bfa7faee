package runtime

import "github.com/objrt/objrt/object"

// iteration.go exposes spec.md §4.5's iterator/generator engine.

// Iterator is objrt's single iterator handle type.
type Iterator = object.Iterator

type iterableLike interface {
	Handle
	Iter() *Iterator
}

// Iter returns an Iterator over x, or nil if x is not iterable.
func Iter(x Handle) *Iterator {
	it, ok := x.(iterableLike)
	if !ok {
		return nil
	}
	return it.Iter()
}

type reverseIterableLike interface {
	Handle
	ReverseIter() *Iterator
}

// IterReversed returns an Iterator that walks x back to front, spec.md
// §4.5's `mini_iter_reversed`/`iter_reversed`, or nil if x has no
// reverse-iteration support (only the sequence family does: tuple,
// list, bytes, bytearray, str, chrarray).
func IterReversed(x Handle) *Iterator {
	it, ok := x.(reverseIterableLike)
	if !ok {
		return nil
	}
	return it.ReverseIter()
}

// Next advances it, returning (value, nil, true) on success, (nil,
// nil, false) on exhaustion, or (nil, exception, false) on failure.
func Next(it *Iterator) (Handle, *object.Exception, bool) { return it.Next() }

// LengthHint returns it's best-effort remaining-count estimate, or -1
// if unknown.
func LengthHint(it *Iterator) int64 { return it.LengthHint() }

// CloseIterator runs GeneratorExit-equivalent cleanup on it.
func CloseIterator(it *Iterator) { it.Close() }

// Send drives it forward, spec.md §4.5's `send(it, value)`. None of
// objrt's iterator shapes (sequence/set/mapping mini-iterators, or a
// step function built with NewGenerator) read a sent value back in —
// only a true coroutine-style generator would — so a non-nil value has
// nothing to deliver it to and is rejected; `Send(it, nil)` is exactly
// `next(it)`, matching spec.md's "next(it) is send(it, nil)".
func Send(it *Iterator, value Handle) (Handle, *object.Exception, bool) {
	if value != nil {
		return nil, object.MethodError, false
	}
	return it.Next()
}

// Throw injects exc into it, spec.md §4.5's `throw(it, exc)`: exc must
// itself be an exception, and the iterator is closed unconditionally
// before the exception is handed back to the caller.
func Throw(it *Iterator, exc Handle) (Handle, *object.Exception, bool) {
	e, ok := exc.(*object.Exception)
	if !ok {
		return nil, object.TypeError, false
	}
	it.Close()
	return nil, e, false
}

// Drain collects every remaining element of it into a slice, stopping
// early on the first exception.
func Drain(it *Iterator) ([]Handle, *object.Exception) {
	var out []Handle
	if hint := it.LengthHint(); hint > 0 {
		out = make([]Handle, 0, hint)
	}
	for {
		v, ex, ok := it.Next()
		if ex != nil {
			return out, ex
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
