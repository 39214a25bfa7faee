package object

// Iterator implements spec.md §4.5's generator/iterator engine. Two
// shapes share one tag pair (TagIterator/TagIteratorRO): a "mini"
// iterator over a sequence's own storage (fast path, no extra
// allocation beyond a cursor) and a full generator driven by a
// user-supplied step function with typed, closeable state.
//
// lengthHint, when >= 0, is a best-effort remaining-count estimate a
// consumer may use to pre-size a destination (spec.md §4.5's
// "length_hint").
type Iterator struct {
	Header
	next       func() (Handle, *Exception, bool) // value, error, ok(has-more)
	closeFn    func()
	lengthHint int64
	closed     bool
}

var (
	_ Handle       = (*Iterator)(nil)
	_ lifecycleOps = (*Iterator)(nil)
)

func newIterator(lengthHint int64, next func() (Handle, *Exception, bool), closeFn func()) *Iterator {
	it := &Iterator{next: next, closeFn: closeFn, lengthHint: lengthHint}
	initHeader(&it.Header, TagIterator, 0, 0)
	return it
}

func (it *Iterator) dealloc()      { it.Close() }
func (it *Iterator) boolValue() bool { return true }

// Next advances the iterator, per spec.md §4.5: returns (value, nil,
// true) on success, (nil, nil, false) at StopIteration-equivalent
// exhaustion, or (nil, exception, false) on failure. A successful step
// decrements the length hint, per spec.md §4.5's send/next contract;
// exhaustion or failure drives it to zero via Close.
func (it *Iterator) Next() (Handle, *Exception, bool) {
	if it.closed {
		return nil, nil, false
	}
	v, ex, ok := it.next()
	if !ok {
		it.Close()
		return v, ex, ok
	}
	if it.lengthHint > 0 {
		it.lengthHint--
	}
	return v, ex, ok
}

// LengthHint returns the best-effort remaining count, or -1 if unknown.
func (it *Iterator) LengthHint() int64 { return it.lengthHint }

// Close implements spec.md §4.5's GeneratorExit semantics: running the
// close hook (if any) exactly once and marking the iterator exhausted.
func (it *Iterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.lengthHint = 0
	if it.closeFn != nil {
		it.closeFn()
		it.closeFn = nil
	}
}

func (it *Iterator) freeze()                                          {}
func (it *Iterator) clone(mutable, deep bool, memo *copyMemo) Handle { return it }
func (it *Iterator) releaseContents()                                { it.Close() }

// NewSequenceIterator builds the mini-iterator fast path of spec.md
// §4.5 over any sequenceOps: a single cursor word, no heap state per
// step beyond the returned element.
func NewSequenceIterator(seq sequenceOps) *Iterator {
	i := 0
	n := seq.Len()
	return newIterator(int64(n-i), func() (Handle, *Exception, bool) {
		if i >= n {
			return nil, nil, false
		}
		v, ex := seq.GetIndex(i)
		i++
		if ex != nil {
			return nil, ex, false
		}
		return v, nil, true
	}, nil)
}

// NewSequenceReverseIterator builds spec.md §4.5's `mini_iter_reversed`
// / `iter_reversed` mini-iterator: the same cursor-word fast path as
// NewSequenceIterator, walking indices from the end down to 0.
func NewSequenceReverseIterator(seq sequenceOps) *Iterator {
	n := seq.Len()
	i := n - 1
	return newIterator(int64(n), func() (Handle, *Exception, bool) {
		if i < 0 {
			return nil, nil, false
		}
		v, ex := seq.GetIndex(i)
		i--
		if ex != nil {
			return nil, ex, false
		}
		return v, nil, true
	}, nil)
}

// NewSetIterator walks a set/frozenset's keyset in table order.
func NewSetIterator(s Handle) *Iterator {
	t, ok := setTableOf(s)
	if !ok {
		return newIterator(0, func() (Handle, *Exception, bool) { return nil, nil, false }, nil)
	}
	items := make([]Handle, 0, t.Len())
	traverseSetTable(t, func(hp *Handle) { items = append(items, *hp) })
	IncrefN(items...)
	i := 0
	return newIterator(int64(len(items)), func() (Handle, *Exception, bool) {
		if i >= len(items) {
			return nil, nil, false
		}
		v := items[i]
		i++
		return v, nil, true
	}, nil)
}

// NewMappingIterator walks a mapping's keys in table order.
func NewMappingIterator(p *pairedTable) *Iterator {
	keys := make([]Handle, 0, p.len())
	p.each(func(k, v Handle) bool {
		keys = append(keys, k)
		return true
	})
	i := 0
	return newIterator(int64(len(keys)), func() (Handle, *Exception, bool) {
		if i >= len(keys) {
			return nil, nil, false
		}
		v := keys[i]
		i++
		Incref(v)
		return v, nil, true
	}, nil)
}

// NewMappingItemsIterator walks a mapping's (key, value) pairs in
// table order, each yielded as a 2-Tuple, spec.md §4.2's `iter_items`.
func NewMappingItemsIterator(p *pairedTable) *Iterator {
	type kv struct{ k, v Handle }
	pairs := make([]kv, 0, p.len())
	p.each(func(k, v Handle) bool {
		pairs = append(pairs, kv{k, v})
		return true
	})
	i := 0
	return newIterator(int64(len(pairs)), func() (Handle, *Exception, bool) {
		if i >= len(pairs) {
			return nil, nil, false
		}
		pr := pairs[i]
		i++
		return TupleFromC(pr.k, pr.v), nil, true
	}, nil)
}

// NewMappingValuesIterator walks a mapping's values in table order,
// spec.md §4.2's `iter_values`.
func NewMappingValuesIterator(p *pairedTable) *Iterator {
	vals := make([]Handle, 0, p.len())
	p.each(func(k, v Handle) bool {
		vals = append(vals, v)
		return true
	})
	i := 0
	return newIterator(int64(len(vals)), func() (Handle, *Exception, bool) {
		if i >= len(vals) {
			return nil, nil, false
		}
		v := vals[i]
		i++
		Incref(v)
		return v, nil, true
	}, nil)
}

// NewGenerator wraps an arbitrary step function as a full generator,
// per spec.md §4.5: step returns the next value, an exception, or
// signals exhaustion; onClose (optional) releases any resources the
// step function's closure captured, run at most once.
func NewGenerator(lengthHint int64, step func() (Handle, *Exception, bool), onClose func()) *Iterator {
	return newIterator(lengthHint, step, onClose)
}
