package object

// Tag identifies an object's concrete type. Per spec.md §3, paired
// mutable/immutable types share adjacent tag values: the immutable tag
// is even, the mutable tag is immutable+1. The immutable tag of a pair
// is also called its "type pair code" and classifies the family (e.g.
// "is this any kind of set?") regardless of current mutability.
type Tag uint8

const (
	TagNil         Tag = 0 // immortal singleton, no mutable pair
	TagBoolFalse   Tag = 2 // immortal singleton
	TagBoolTrue    Tag = 3 // immortal singleton
	TagInt         Tag = 4
	TagIntStore    Tag = 5
	TagFloat       Tag = 6
	TagFloatStore  Tag = 7
	TagBytes       Tag = 8
	TagByteArray   Tag = 9
	TagStr         Tag = 10
	TagChrArray    Tag = 11
	TagTuple       Tag = 12
	TagList        Tag = 13
	TagFrozenSet   Tag = 14
	TagSet         Tag = 15
	TagFrozenDict  Tag = 16
	TagDict        Tag = 17
	TagIterator    Tag = 18 // frozen and live iterators share this tag pair
	TagIteratorRO  Tag = 19
	TagException   Tag = 20 // always immortal
	TagType        Tag = 22 // metatype, describes a Tag itself
	TagInvalidated Tag = 24 // transmute target; both parities exist
	TagInvalidatedM Tag = 25
)

// IsMutable reports whether a tag is the odd (mutable) half of a pair.
// TagBoolTrue is odd but is not a mutable counterpart of TagBoolFalse:
// per spec.md §3 bool is two unpaired immortals, so it is excluded here.
func (t Tag) IsMutable() bool {
	if t == TagBoolTrue || t == TagBoolFalse {
		return false
	}
	return t&1 == 1
}

// PairCode returns the immutable tag identifying t's family, regardless
// of t's own mutability. TagBoolTrue has no mutable counterpart and maps
// to itself rather than to TagBoolFalse.
func (t Tag) PairCode() Tag {
	if t == TagBoolTrue || t == TagBoolFalse {
		return t
	}
	if t.IsMutable() {
		return t - 1
	}
	return t
}

// Frozen returns the immutable tag paired with t.
func (t Tag) Frozen() Tag { return t.PairCode() }

// Thawed returns the mutable tag paired with t, if one exists (nil,
// bool, and exception tags have none and return t unchanged).
func (t Tag) Thawed() Tag {
	switch t.PairCode() {
	case TagNil, TagBoolFalse, TagBoolTrue, TagException, TagType:
		return t
	default:
		return t.PairCode() + 1
	}
}

// IsAnySet reports whether t's family is frozenset/set.
func (t Tag) IsAnySet() bool { return t.PairCode() == TagFrozenSet }

// IsAnyDict reports whether t's family is frozendict/dict.
func (t Tag) IsAnyDict() bool { return t.PairCode() == TagFrozenDict }

// IsAnySequence reports whether t's family is tuple/list.
func (t Tag) IsAnySequence() bool { return t.PairCode() == TagTuple }

// IsAnyBytes reports whether t's family is bytes/bytearray.
func (t Tag) IsAnyBytes() bool { return t.PairCode() == TagBytes }

// IsAnyStr reports whether t's family is str/chrarray.
func (t Tag) IsAnyStr() bool { return t.PairCode() == TagStr }

// IsAnyInt reports whether t's family is int/intstore.
func (t Tag) IsAnyInt() bool { return t.PairCode() == TagInt }

// IsAnyFloat reports whether t's family is float/floatstore.
func (t Tag) IsAnyFloat() bool { return t.PairCode() == TagFloat }

// String implements fmt.Stringer for debugging and objrt-inspect output.
func (t Tag) String() string {
	switch t {
	case TagNil:
		return "nil"
	case TagBoolFalse, TagBoolTrue:
		return "bool"
	case TagInt, TagIntStore:
		return "int"
	case TagFloat, TagFloatStore:
		return "float"
	case TagBytes, TagByteArray:
		return "bytes"
	case TagStr, TagChrArray:
		return "str"
	case TagTuple, TagList:
		return "tuple"
	case TagFrozenSet, TagSet:
		return "frozenset"
	case TagFrozenDict, TagDict:
		return "frozendict"
	case TagIterator, TagIteratorRO:
		return "iterator"
	case TagException:
		return "exception"
	case TagType:
		return "type"
	case TagInvalidated, TagInvalidatedM:
		return "invalidated"
	default:
		return "unknown"
	}
}
