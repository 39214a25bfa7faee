package object

import "sync/atomic"

// recursionLimit guards hash, compare, and deep-copy/deep-freeze
// traversal depth, per spec.md §5 "Recursion" and §6's Initialize
// config surface. Set once via SetRecursionLimit from runtime.Initialize.
var recursionLimit atomic.Int64

func init() { recursionLimit.Store(1000) }

// SetRecursionLimit installs the process-wide recursion depth guard.
// Called once by runtime.Initialize.
func SetRecursionLimit(n int) { recursionLimit.Store(int64(n)) }

// RecursionLimit returns the current guard value.
func RecursionLimit() int { return int(recursionLimit.Load()) }

// hashableOps is implemented by every concrete type: CurrentHash is
// defined on all objects per spec.md §4.4, even mutables (which simply
// never cache the result).
type hashableOps interface {
	Handle
	currentHash(v *hashVisitor) (int64, *Exception)
}

// hashVisitor is spec.md §4.5/§4.4's "opaque hash_visitor": it performs
// caching for immutables and tracks recursion depth across a single
// top-level Hash/CurrentHash call, exactly as containers (tuple,
// frozenset, frozendict) recurse into their elements through it.
type hashVisitor struct{ depth int }

func (v *hashVisitor) enter() *Exception {
	v.depth++
	if int64(v.depth) > recursionLimit.Load() {
		return RecursionLimitError
	}
	return nil
}

func (v *hashVisitor) leave() { v.depth-- }

// visitHash is what container currentHash implementations call on each
// element instead of calling object.Hash directly, so that a single
// recursion-depth counter and memo account for the whole traversal.
func (v *hashVisitor) visitHash(x Handle) (int64, *Exception) {
	if ex := v.enter(); ex != nil {
		return 0, ex
	}
	defer v.leave()
	if ex := CheckUsable(x); ex != nil {
		return 0, ex
	}
	if e, ok := x.(*Exception); ok {
		return 0, e
	}
	hdr := x.hdr()
	if !x.Tag().IsMutable() && hdr.cachedHash != hashInvalid {
		return hdr.cachedHash, nil
	}
	hx, ok := x.(hashableOps)
	if !ok {
		return 0, MethodError
	}
	val, ex := hx.currentHash(v)
	if ex != nil {
		return 0, ex
	}
	if !x.Tag().IsMutable() {
		hdr.cachedHash = val
	}
	return val, nil
}

// Hash implements spec.md §4.4's cached `hash`: only defined for
// immutable handles. Reads the memoized value if present, otherwise
// computes and caches it via CurrentHash.
func Hash(x Handle) (int64, *Exception) {
	if ex := CheckUsable(x); ex != nil {
		return 0, ex
	}
	if e, ok := Propagate(x); ok {
		return 0, e.(*Exception)
	}
	if x.Tag().IsMutable() {
		return 0, TypeError
	}
	hdr := x.hdr()
	if hdr.cachedHash != hashInvalid {
		return hdr.cachedHash, nil
	}
	v := &hashVisitor{}
	val, ex := v.visitHash(x)
	if ex != nil {
		return 0, ex
	}
	return val, nil
}

// CurrentHash implements spec.md §4.4's uncached `current_hash`,
// defined on all objects including mutables.
func CurrentHash(x Handle) (int64, *Exception) {
	if ex := CheckUsable(x); ex != nil {
		return 0, ex
	}
	if e, ok := Propagate(x); ok {
		return 0, e.(*Exception)
	}
	hx, ok := x.(hashableOps)
	if !ok {
		return 0, MethodError
	}
	v := &hashVisitor{}
	if ex := v.enter(); ex != nil {
		return 0, ex
	}
	defer v.leave()
	return hx.currentHash(v)
}

// remapHash maps a computed hash away from the invalid-hash sentinel,
// per spec.md §4.4's repeated "mapped away from the invalid-hash
// sentinel" rule for bool/int/bytes/str/frozenset.
func remapHash(h int64) int64 {
	if h == hashInvalid {
		return hashInvalid + 1
	}
	return h
}

// hashBytes implements spec.md §9's Open Question #1 decision: seed
// h=0, fold each byte as h = (h*1000003) XOR byte, XOR the length in,
// then remap. This guarantees CurrentHash("") == 0 and matches
// original_source/nohtyP.c's own multiplier (1000003).
func hashBytes(b []byte) int64 {
	var h int64
	for _, c := range b {
		h = (h * 1000003) ^ int64(c)
	}
	h ^= int64(len(b))
	return remapHash(h)
}
