package object

// Bytes is the immutable byte-string type; ByteArray is its mutable
// twin (spec.md §3's bytes/bytearray pair).
type Bytes struct {
	Header
	buf []byte
}

// ByteArray is the mutable variant of Bytes.
type ByteArray struct {
	Header
	buf []byte
}

var (
	_ Handle        = (*Bytes)(nil)
	_ hashableOps   = (*Bytes)(nil)
	_ comparisonOps = (*Bytes)(nil)
	_ sequenceOps   = (*Bytes)(nil)
	_ lifecycleOps  = (*Bytes)(nil)

	_ Handle             = (*ByteArray)(nil)
	_ hashableOps        = (*ByteArray)(nil)
	_ comparisonOps      = (*ByteArray)(nil)
	_ mutableSequenceOps = (*ByteArray)(nil)
	_ lifecycleOps       = (*ByteArray)(nil)
)

var emptyBytes = newBytesHeaderOnly()

// newBytesHeaderOnly builds the canonical empty-Bytes singleton without
// touching the allocator (there is no payload to allocate).
func newBytesHeaderOnly() *Bytes {
	y := &Bytes{}
	initHeader(&y.Header, TagBytes, 0, 0)
	return y
}

// newBytes copies b into a fresh buffer obtained from the installed
// allocator (spec.md §4.1's alloc primitive), recording the true usable
// size as alloclen.
func newBytes(b []byte) *Bytes {
	buf, alloclen := allocBuf(len(b))
	copy(buf, b)
	y := &Bytes{buf: buf}
	initHeader(&y.Header, TagBytes, int32(len(b)), alloclen)
	return y
}

// BytesFromC constructs an immutable Bytes copying b, so later
// mutation of the caller's slice cannot alias objrt state.
func BytesFromC(b []byte) *Bytes {
	if len(b) == 0 {
		Incref(emptyBytes)
		return emptyBytes
	}
	return newBytes(b)
}

// ByteArrayFromC constructs a mutable ByteArray copying b through the
// installed allocator.
func ByteArrayFromC(b []byte) *ByteArray {
	buf, alloclen := allocBuf(len(b))
	copy(buf, b)
	y := &ByteArray{buf: buf}
	initHeader(&y.Header, TagByteArray, int32(len(b)), alloclen)
	return y
}

// Bytes returns the underlying byte slice; callers must not mutate it.
func (y *Bytes) Bytes() []byte { return y.buf }

// Bytes returns the underlying byte slice; callers must not mutate it
// without going through the ByteArray's own mutators (else the cached
// hash and length tracking desync).
func (y *ByteArray) Bytes() []byte { return y.buf }

func (y *Bytes) dealloc()     { releaseBuf(y.buf) }
func (y *ByteArray) dealloc() { releaseBuf(y.buf) }
func (y *Bytes) boolValue() bool     { return len(y.buf) != 0 }
func (y *ByteArray) boolValue() bool { return len(y.buf) != 0 }

func (y *Bytes) currentHash(v *hashVisitor) (int64, *Exception) { return hashBytes(y.buf), nil }
func (y *ByteArray) currentHash(v *hashVisitor) (int64, *Exception) {
	return hashBytes(y.buf), nil
}

func bytesOf(x Handle) ([]byte, bool) {
	switch v := x.(type) {
	case *Bytes:
		return v.buf, true
	case *ByteArray:
		return v.buf, true
	}
	return nil, false
}

func bytesCompareWith(op CompareOp, a []byte, other Handle) Handle {
	b, ok := bytesOf(other)
	if !ok {
		return notImplemented()
	}
	c := compareByteSlices(a, b)
	switch op {
	case OpEq:
		return boolHandle(c == 0)
	case OpNe:
		return boolHandle(c != 0)
	case OpLt:
		return boolHandle(c < 0)
	case OpLe:
		return boolHandle(c <= 0)
	case OpGe:
		return boolHandle(c >= 0)
	case OpGt:
		return boolHandle(c > 0)
	}
	return notImplemented()
}

func compareByteSlices(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

func (y *Bytes) compare(op CompareOp, other Handle) Handle { return bytesCompareWith(op, y.buf, other) }
func (y *ByteArray) compare(op CompareOp, other Handle) Handle {
	return bytesCompareWith(op, y.buf, other)
}

func (y *Bytes) Len() int { return len(y.buf) }

func (y *Bytes) GetIndex(i int) (Handle, *Exception) {
	idx, ex := normalizeIndex(i, len(y.buf))
	if ex != nil {
		return nil, ex
	}
	return IntFromC(int64(y.buf[idx])), nil
}

func (y *Bytes) GetSlice(start, stop, step int) (Handle, *Exception) {
	lo, _, st, n := sliceBounds(start, stop, step, len(y.buf))
	out := make([]byte, 0, n)
	for i, c := 0, lo; i < n; i, c = i+1, c+st {
		out = append(out, y.buf[c])
	}
	return newBytes(out), nil
}

func (y *ByteArray) Len() int { return len(y.buf) }

func (y *ByteArray) GetIndex(i int) (Handle, *Exception) {
	idx, ex := normalizeIndex(i, len(y.buf))
	if ex != nil {
		return nil, ex
	}
	return IntFromC(int64(y.buf[idx])), nil
}

func (y *ByteArray) GetSlice(start, stop, step int) (Handle, *Exception) {
	lo, hi, st, n := sliceBounds(start, stop, step, len(y.buf))
	out := make([]byte, 0, n)
	for i, c := 0, lo; i < n; i, c = i+1, c+st {
		out = append(out, y.buf[c])
	}
	_ = hi
	return ByteArrayFromC(out), nil
}

func (y *ByteArray) SetIndex(i int, v Handle) *Exception {
	if !y.Tag().IsMutable() {
		return TypeError
	}
	idx, ex := normalizeIndex(i, len(y.buf))
	if ex != nil {
		return ex
	}
	n, ok := asInt64(v)
	if !ok || n < 0 || n > 255 {
		return ValueError
	}
	y.buf[idx] = byte(n)
	y.invalidateCachedHash()
	return nil
}

// growTo ensures y.buf can hold newLen bytes, growing through the
// installed allocator's realloc_in_place_or_new primitive when the
// current bucket (tracked by alloclen) has no more room, then extends
// y.buf's length to newLen.
func (y *ByteArray) growTo(newLen int) {
	if int32(newLen) > y.alloclen {
		y.buf = reallocBuf(y.buf, newLen)
		y.setAllocLen(int32(cap(y.buf)))
	} else {
		y.buf = y.buf[:newLen]
	}
}

func (y *ByteArray) Append(v Handle) *Exception {
	if !y.Tag().IsMutable() {
		return TypeError
	}
	n, ok := asInt64(v)
	if !ok || n < 0 || n > 255 {
		return ValueError
	}
	newLen := len(y.buf) + 1
	y.growTo(newLen)
	y.buf[newLen-1] = byte(n)
	y.length = int32(newLen)
	y.invalidateCachedHash()
	return nil
}

func (y *ByteArray) Insert(i int, v Handle) *Exception {
	if !y.Tag().IsMutable() {
		return TypeError
	}
	n, ok := asInt64(v)
	if !ok || n < 0 || n > 255 {
		return ValueError
	}
	if i < 0 {
		i += len(y.buf)
	}
	if i < 0 {
		i = 0
	}
	if i > len(y.buf) {
		i = len(y.buf)
	}
	newLen := len(y.buf) + 1
	y.growTo(newLen)
	copy(y.buf[i+1:], y.buf[i:newLen-1])
	y.buf[i] = byte(n)
	y.length = int32(newLen)
	y.invalidateCachedHash()
	return nil
}

func (y *ByteArray) PopIndex(i int) (Handle, *Exception) {
	if !y.Tag().IsMutable() {
		return nil, TypeError
	}
	idx, ex := normalizeIndex(i, len(y.buf))
	if ex != nil {
		return nil, ex
	}
	v := y.buf[idx]
	y.buf = append(y.buf[:idx], y.buf[idx+1:]...)
	y.length = int32(len(y.buf))
	y.invalidateCachedHash()
	return IntFromC(int64(v)), nil
}

func (y *ByteArray) Reverse() *Exception {
	if !y.Tag().IsMutable() {
		return TypeError
	}
	for i, j := 0, len(y.buf)-1; i < j; i, j = i+1, j-1 {
		y.buf[i], y.buf[j] = y.buf[j], y.buf[i]
	}
	y.invalidateCachedHash()
	return nil
}

func (y *Bytes) Iter() *Iterator     { return NewSequenceIterator(y) }
func (y *ByteArray) Iter() *Iterator { return NewSequenceIterator(y) }

// ReverseIter implements spec.md §4.5's `iter_reversed`.
func (y *Bytes) ReverseIter() *Iterator     { return NewSequenceReverseIterator(y) }
func (y *ByteArray) ReverseIter() *Iterator { return NewSequenceReverseIterator(y) }

func (y *Bytes) freeze() {}
func (y *Bytes) clone(mutable, deep bool, memo *copyMemo) Handle {
	if mutable {
		return ByteArrayFromC(y.buf)
	}
	return BytesFromC(y.buf)
}
func (y *Bytes) releaseContents() {}

func (y *ByteArray) freeze() {}
func (y *ByteArray) clone(mutable, deep bool, memo *copyMemo) Handle {
	if mutable {
		return ByteArrayFromC(y.buf)
	}
	return BytesFromC(y.buf)
}

// releaseContents is a no-op: a ByteArray's buffer is its own payload,
// not a contained Handle, so it is returned to the allocator once, in
// dealloc, rather than here.
func (y *ByteArray) releaseContents() {}
