package object

import "github.com/objrt/objrt/internal/alloc"

// allocator is the process-wide buffer allocator installed by
// runtime.Initialize (spec.md §4.1's pluggable alloc/realloc_in_place_or_new
// pair). Bytes/ByteArray, the one builtin type whose payload is itself a
// raw byte buffer, construct and grow their storage through it; nil
// (before Initialize runs, or in tests that construct objects directly)
// falls back to plain make()/append(), matching every other container's
// pre-allocator behavior.
var allocator *alloc.Allocator

// SetAllocator installs the buffer allocator. Called once by
// runtime.Initialize.
func SetAllocator(a *alloc.Allocator) { allocator = a }

// allocBuf returns a buffer of exactly n bytes, backed by the installed
// allocator's over-allocated bucket when one is configured (a bucket
// reused from the pool is not zeroed, so callers overwrite it);
// the second return is the true usable capacity, recorded as a
// container's alloclen per spec.md §3.
func allocBuf(n int) (buf []byte, alloclen int32) {
	if n <= 0 {
		return nil, 0
	}
	if allocator == nil {
		return make([]byte, n), int32(n)
	}
	full, actual := allocator.Alloc(n)
	return full[:n], int32(actual)
}

// reallocBuf grows old to hold newLen bytes, using the allocator's
// realloc_in_place_or_new primitive when one is configured: extends in
// place within the existing bucket when it already has room, otherwise
// allocates fresh and copies, releasing the old buffer.
func reallocBuf(old []byte, newLen int) []byte {
	if allocator == nil {
		if newLen <= cap(old) {
			return old[:newLen]
		}
		buf := make([]byte, newLen)
		copy(buf, old)
		return buf
	}
	grew := newLen > cap(old)
	buf, _ := allocator.ReallocInPlaceOrNew(old, newLen, 0)
	if grew {
		// The fresh-allocation path hands back a full, possibly
		// over-sized bucket; trim it to the requested length so
		// len(buf) stays exactly newLen while cap keeps the slack.
		buf = buf[:newLen]
		copy(buf, old)
		if len(old) > 0 {
			allocator.Release(old)
		}
	}
	return buf
}

// releaseBuf returns buf to the allocator, a no-op if none is
// configured or buf is empty.
func releaseBuf(buf []byte) {
	if allocator != nil && len(buf) > 0 {
		allocator.Release(buf)
	}
}
