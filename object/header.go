package object

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// Sentinel values from spec.md §3's "Invariants" and §4's per-field
// documentation.
const (
	hashInvalid    = int64(math.MinInt64)
	lenInvalid     = int32(-1)
	alloclenInvalid = int32(-1)
	refcntImmortal = ^uint32(0) // all-ones freezes the count
	refcntMax      = refcntImmortal - 1
)

// Handle is the single opaque handle type every public objrt operation
// takes and returns, per spec.md §3. Concrete types implement it by
// embedding Header and satisfying Tag()/hdr(); hdr() is unexported so
// only this package may dispatch on the header directly — host code
// goes through the runtime package's operation entry points instead.
type Handle interface {
	// Tag reports the concrete type tag of the handle.
	Tag() Tag
	hdr() *Header
}

// Header is the common prefix embedded by every concrete object type.
// It mirrors spec.md §3's packed object header field-for-field, using
// plain Go fields instead of bit-packing (design note 9: packing isn't
// required in a modern rewrite).
type Header struct {
	tag        Tag
	refcnt     atomic.Uint32
	cachedHash int64 // hashInvalid sentinel if not cached
	length     int32 // lenInvalid sentinel -> call the type's Len method
	alloclen   int32 // alloclenInvalid sentinel
	data       unsafe.Pointer
}

// initHeader sets up a fresh header for a newly constructed object:
// refcount = 1, cachedHash invalid, length/alloclen as given.
func initHeader(h *Header, tag Tag, length, alloclen int32) {
	h.tag = tag
	h.refcnt.Store(1)
	h.cachedHash = hashInvalid
	h.length = length
	h.alloclen = alloclen
}

// Tag implements Handle via promotion from any type embedding Header.
func (h *Header) Tag() Tag { return h.tag }

func (h *Header) hdr() *Header { return h }

// Immortal reports whether refcnt is pinned at the immortal sentinel.
func (h *Header) Immortal() bool { return h.refcnt.Load() == refcntImmortal }

// Refcnt returns the current reference count, or the immortal sentinel.
func (h *Header) Refcnt() uint32 { return h.refcnt.Load() }

// makeImmortal pins refcnt at the sentinel. Used only for the fixed set
// of singletons (nil, the two bools, exceptions, the Type metatype).
func (h *Header) makeImmortal() { h.refcnt.Store(refcntImmortal) }

// cachedLength returns the cached length, or lenInvalid if the caller
// must fall back to the type's Len method (spec.md §3).
func (h *Header) cachedLength() (int32, bool) {
	if h.length == lenInvalid {
		return 0, false
	}
	return h.length, true
}

// AllocLen returns the header's cached usable-capacity hint, or
// alloclenInvalid if the type didn't record one.
func (h *Header) AllocLen() int32 { return h.alloclen }

func (h *Header) setAllocLen(n int32) { h.alloclen = n }

// setTag transmutes the header's tag in place. Used by Freeze (flip low
// bit to immutable) and Invalidate (jump to the invalidated tag).
func (h *Header) setTag(t Tag) { h.tag = t }

// invalidateCachedHash clears the memoized hash, required whenever a
// mutable object changes and whenever a tag transition occurs.
func (h *Header) invalidateCachedHash() { h.cachedHash = hashInvalid }
