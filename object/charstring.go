package object

import (
	"unicode/utf8"

	"github.com/objrt/objrt/internal/rtunsafe"
)

// Str is the immutable character-string type; ChrArray is its mutable
// twin (spec.md §3's str/chrarray pair). Indexing and length are by
// Unicode code point, not byte, so both store the decoded []rune only;
// the UTF-8 form is rebuilt from it when needed.
type Str struct {
	Header
	runes []rune
}

// ChrArray is the mutable variant of Str.
type ChrArray struct {
	Header
	runes []rune
}

var (
	_ Handle        = (*Str)(nil)
	_ hashableOps   = (*Str)(nil)
	_ comparisonOps = (*Str)(nil)
	_ sequenceOps   = (*Str)(nil)
	_ lifecycleOps  = (*Str)(nil)

	_ Handle             = (*ChrArray)(nil)
	_ hashableOps        = (*ChrArray)(nil)
	_ comparisonOps      = (*ChrArray)(nil)
	_ mutableSequenceOps = (*ChrArray)(nil)
	_ lifecycleOps       = (*ChrArray)(nil)
)

var emptyStr = newStr(nil)

func newStr(r []rune) *Str {
	s := &Str{runes: r}
	initHeader(&s.Header, TagStr, int32(len(r)), int32(len(r)))
	return s
}

// StrFromC constructs an immutable Str from a Go string.
func StrFromC(s string) *Str {
	if s == "" {
		Incref(emptyStr)
		return emptyStr
	}
	return newStr([]rune(s))
}

// ChrArrayFromC constructs a mutable ChrArray from a Go string.
func ChrArrayFromC(s string) *ChrArray {
	c := &ChrArray{runes: []rune(s)}
	initHeader(&c.Header, TagChrArray, int32(len(c.runes)), int32(len(c.runes)))
	return c
}

// ChrFromCodepoint constructs the one-character immutable Str for a
// single Unicode code point, spec.md §6's chr_from_codepoint. Negative
// values, values above utf8.MaxRune, and surrogate-half code points are
// not valid scalar values and raise UnicodeError.
func ChrFromCodepoint(cp int64) (*Str, *Exception) {
	if cp < 0 || cp > utf8.MaxRune || (cp >= 0xD800 && cp <= 0xDFFF) {
		return nil, UnicodeError
	}
	return newStr([]rune{rune(cp)}), nil
}

// String returns the Go string form.
func (s *Str) String() string { return string(s.runes) }

// String returns the Go string form.
func (c *ChrArray) String() string { return string(c.runes) }

func (s *Str) dealloc()     {}
func (c *ChrArray) dealloc() {}
func (s *Str) boolValue() bool      { return len(s.runes) != 0 }
func (c *ChrArray) boolValue() bool { return len(c.runes) != 0 }

// currentHash hashes the UTF-8 encoding via the same byte-hash rule as
// bytes/bytearray, per spec.md §4.4's shared "sequence of bytes" hash
// family; rtunsafe avoids an extra allocation for the common
// already-immutable Str case.
func (s *Str) currentHash(v *hashVisitor) (int64, *Exception) {
	return hashBytes(rtunsafe.StringToBytes(s.String())), nil
}

func (c *ChrArray) currentHash(v *hashVisitor) (int64, *Exception) {
	return hashBytes(rtunsafe.StringToBytes(c.String())), nil
}

func runesOf(x Handle) ([]rune, bool) {
	switch v := x.(type) {
	case *Str:
		return v.runes, true
	case *ChrArray:
		return v.runes, true
	}
	return nil, false
}

func strCompareWith(op CompareOp, a []rune, other Handle) Handle {
	b, ok := runesOf(other)
	if !ok {
		return notImplemented()
	}
	c := compareRuneSlices(a, b)
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

func compareRuneSlices(a, b []rune) int {
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

func (s *Str) compare(op CompareOp, other Handle) Handle { return strCompareWith(op, s.runes, other) }
func (c *ChrArray) compare(op CompareOp, other Handle) Handle {
	return strCompareWith(op, c.runes, other)
}

func (s *Str) Len() int { return len(s.runes) }

func (s *Str) GetIndex(i int) (Handle, *Exception) {
	idx, ex := normalizeIndex(i, len(s.runes))
	if ex != nil {
		return nil, ex
	}
	return newStr([]rune{s.runes[idx]}), nil
}

func (s *Str) GetSlice(start, stop, step int) (Handle, *Exception) {
	lo, _, st, n := sliceBounds(start, stop, step, len(s.runes))
	out := make([]rune, 0, n)
	for i, c := 0, lo; i < n; i, c = i+1, c+st {
		out = append(out, s.runes[c])
	}
	return newStr(out), nil
}

func (c *ChrArray) Len() int { return len(c.runes) }

func (c *ChrArray) GetIndex(i int) (Handle, *Exception) {
	idx, ex := normalizeIndex(i, len(c.runes))
	if ex != nil {
		return nil, ex
	}
	return newStr([]rune{c.runes[idx]}), nil
}

func (c *ChrArray) GetSlice(start, stop, step int) (Handle, *Exception) {
	lo, _, st, n := sliceBounds(start, stop, step, len(c.runes))
	out := make([]rune, 0, n)
	for i, k := 0, lo; i < n; i, k = i+1, k+st {
		out = append(out, c.runes[k])
	}
	return ChrArrayFromC(string(out)), nil
}

func (c *ChrArray) SetIndex(i int, v Handle) *Exception {
	if !c.Tag().IsMutable() {
		return TypeError
	}
	idx, ex := normalizeIndex(i, len(c.runes))
	if ex != nil {
		return ex
	}
	r, ok := runesOf(v)
	if !ok || len(r) != 1 {
		return ValueError
	}
	c.runes[idx] = r[0]
	c.invalidateCachedHash()
	return nil
}

func (c *ChrArray) Append(v Handle) *Exception {
	if !c.Tag().IsMutable() {
		return TypeError
	}
	r, ok := runesOf(v)
	if !ok || len(r) != 1 {
		return ValueError
	}
	c.runes = append(c.runes, r[0])
	c.length = int32(len(c.runes))
	c.invalidateCachedHash()
	return nil
}

func (c *ChrArray) Insert(i int, v Handle) *Exception {
	if !c.Tag().IsMutable() {
		return TypeError
	}
	r, ok := runesOf(v)
	if !ok || len(r) != 1 {
		return ValueError
	}
	if i < 0 {
		i += len(c.runes)
	}
	if i < 0 {
		i = 0
	}
	if i > len(c.runes) {
		i = len(c.runes)
	}
	c.runes = append(c.runes, 0)
	copy(c.runes[i+1:], c.runes[i:])
	c.runes[i] = r[0]
	c.length = int32(len(c.runes))
	c.invalidateCachedHash()
	return nil
}

func (c *ChrArray) PopIndex(i int) (Handle, *Exception) {
	if !c.Tag().IsMutable() {
		return nil, TypeError
	}
	idx, ex := normalizeIndex(i, len(c.runes))
	if ex != nil {
		return nil, ex
	}
	v := c.runes[idx]
	c.runes = append(c.runes[:idx], c.runes[idx+1:]...)
	c.length = int32(len(c.runes))
	c.invalidateCachedHash()
	return newStr([]rune{v}), nil
}

func (c *ChrArray) Reverse() *Exception {
	if !c.Tag().IsMutable() {
		return TypeError
	}
	for i, j := 0, len(c.runes)-1; i < j; i, j = i+1, j-1 {
		c.runes[i], c.runes[j] = c.runes[j], c.runes[i]
	}
	c.invalidateCachedHash()
	return nil
}

func (s *Str) Iter() *Iterator      { return NewSequenceIterator(s) }
func (c *ChrArray) Iter() *Iterator { return NewSequenceIterator(c) }

// ReverseIter implements spec.md §4.5's `iter_reversed`.
func (s *Str) ReverseIter() *Iterator      { return NewSequenceReverseIterator(s) }
func (c *ChrArray) ReverseIter() *Iterator { return NewSequenceReverseIterator(c) }

func (s *Str) freeze() {}
func (s *Str) clone(mutable, deep bool, memo *copyMemo) Handle {
	if mutable {
		return ChrArrayFromC(s.String())
	}
	return StrFromC(s.String())
}
func (s *Str) releaseContents() {}

func (c *ChrArray) freeze() {}
func (c *ChrArray) clone(mutable, deep bool, memo *copyMemo) Handle {
	if mutable {
		return ChrArrayFromC(c.String())
	}
	return StrFromC(c.String())
}
func (c *ChrArray) releaseContents() { c.runes = nil }
