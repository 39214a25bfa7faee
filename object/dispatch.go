package object

// Dispatch in objrt is plain Go interface satisfaction rather than a
// vtable of function pointers, per design note 9 ("prefer a tagged enum
// of types with a single dispatch function per operation using
// exhaustive matching... unsupported variants yield MethodError").
// Each operation suite from spec.md §4.2 is one small interface; a
// concrete type opts in by implementing it. Dispatch helpers below do
// the type assertion and return MethodError (or InvalidatedError, or
// the exception unchanged) when a type doesn't support an operation —
// the Go-idiomatic equivalent of a null-slot-filled-by-error-stub.

// Propagate implements spec.md §7's universal propagation rule:
// "exceptions passed in as inputs are returned immediately (unchanged)
// by every operation that would otherwise consume them." Every runtime
// entry point calls this first on each Handle argument.
func Propagate(xs ...Handle) (Handle, bool) {
	for _, x := range xs {
		if e, ok := x.(*Exception); ok {
			return e, true
		}
	}
	return nil, false
}

// CheckUsable returns InvalidatedError if x has been invalidated,
// otherwise nil. Every dispatch helper below calls this before a type
// assertion so that invalidated objects reliably produce
// InvalidatedError instead of a confusing "method not supported".
func CheckUsable(x Handle) *Exception {
	switch x.Tag() {
	case TagInvalidated, TagInvalidatedM:
		return InvalidatedError
	}
	return nil
}

// objectOps is the suite every concrete type implements directly
// (spec.md §4.2's "object suite"): the dealloc hook and the
// boolean-conversion primitive (comparison is comparisonOps, the
// freeze/copy hooks are lifecycleOps). Declared here for documentation;
// each concrete type's methods are checked structurally where used.
type objectOps interface {
	Handle
	dealloc()
	boolValue() bool
}

// sequenceOps is spec.md §4.2's "sequence suite", implemented by
// tuple/list, bytes/bytearray and str/chrarray.
type sequenceOps interface {
	Handle
	Len() int
	GetIndex(i int) (Handle, *Exception)
	GetSlice(start, stop, step int) (Handle, *Exception)
}

// mutableSequenceOps extends sequenceOps with the in-place mutators
// that list, bytearray and chrarray support.
type mutableSequenceOps interface {
	sequenceOps
	SetIndex(i int, v Handle) *Exception
	Append(v Handle) *Exception
	Insert(i int, v Handle) *Exception
	PopIndex(i int) (Handle, *Exception)
	Reverse() *Exception
}

// setOps is spec.md §4.2's "set suite", implemented by frozenset/set.
type setOps interface {
	Handle
	Len() int
	Contains(v Handle) (bool, *Exception)
	IsDisjoint(other Handle) (bool, *Exception)
	IsSubsetOf(other Handle) (bool, *Exception)
}

// mappingOps is spec.md §4.2's "mapping suite", implemented by
// frozendict/dict.
type mappingOps interface {
	Handle
	Len() int
	GetItem(k Handle) (Handle, *Exception)
	Contains(k Handle) (bool, *Exception)
}

// iterableOps marks a type that can produce an Iterator via Iter().
type iterableOps interface {
	Handle
	Iter() *Iterator
}
