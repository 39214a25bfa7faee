// Package rtunsafe centralises **all** unavoidable usage of the `unsafe`
// standard-library package so the rest of objrt stays clean and easy to
// audit. Every helper documents its pre-/post-conditions.
//
// These helpers back the object header's inline-vs-external data pointer
// (see object/header.go) and the byte/string hashing in object/hash.go.
// They are not part of the public API and may change without notice.
//
// All functions are go:linkname-free, cgo-free, pure Go.
package rtunsafe

import "unsafe"

// BytesToString converts a byte slice to a string without allocating. The
// caller must guarantee b is never modified for the lifetime of the
// returned string.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// StringToBytes reinterprets string data as a byte slice. The returned
// slice MUST remain read-only.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// PtrSlice converts an arbitrary *T pointer plus element count into a []T
// without copying. Used to view an object's inline tail as a typed slice.
func PtrSlice[T any](ptr *T, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(ptr, n)
}

// ByteSliceFrom returns a []byte view of raw memory starting at ptr with
// the given length. Caller must ensure the block is at least length bytes.
func ByteSliceFrom(ptr unsafe.Pointer, length uintptr) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

// AlignUp rounds x up to the nearest multiple of align (a power of two).
func AlignUp(x, align uintptr) uintptr {
	return (x + align - 1) &^ (align - 1)
}

// IsPowerOfTwo returns true if x has exactly one bit set.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}

// NextPowerOfTwo returns the smallest power of two >= x, or 1 if x == 0.
func NextPowerOfTwo(x uint64) uint64 {
	if x == 0 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x + 1
}
