package object

// Type is the immortal metatype object representing one of objrt's
// closed set of builtin types (spec.md §3's "type" tag). There is
// exactly one Type instance per Tag, built once at init.
type Type struct {
	Header
	name string
	tag  Tag // the tag this Type instance describes
}

var _ Handle = (*Type)(nil)

func newType(name string, tag Tag) *Type {
	t := &Type{name: name, tag: tag}
	initHeader(&t.Header, TagType, 0, 0)
	t.makeImmortal()
	return t
}

// Name returns the type's display name.
func (t *Type) Name() string { return t.name }

// Describes reports the Tag this Type instance represents.
func (t *Type) Describes() Tag { return t.tag }

func (t *Type) dealloc()      {}
func (t *Type) boolValue() bool { return true }

var typeRegistry = map[Tag]*Type{}

func registerType(name string, tag Tag) *Type {
	t := newType(name, tag)
	typeRegistry[tag] = t
	return t
}

// The canonical Type singletons, one per builtin tag: each member of a
// mutable/immutable pair gets its own Type (see TypeOf). Bool has one
// Type for both of its tags.
var (
	NilType        = registerType("nil", TagNil)
	BoolType       = registerType("bool", TagBoolFalse)
	IntType        = registerType("int", TagInt)
	IntStoreType   = registerType("intstore", TagIntStore)
	FloatType      = registerType("float", TagFloat)
	FloatStoreType = registerType("floatstore", TagFloatStore)
	BytesType      = registerType("bytes", TagBytes)
	ByteArrayType  = registerType("bytearray", TagByteArray)
	StrType        = registerType("str", TagStr)
	ChrArrayType   = registerType("chrarray", TagChrArray)
	TupleType      = registerType("tuple", TagTuple)
	ListType       = registerType("list", TagList)
	FrozenSetType  = registerType("frozenset", TagFrozenSet)
	SetType        = registerType("set", TagSet)
	FrozenDictType = registerType("frozendict", TagFrozenDict)
	DictType       = registerType("dict", TagDict)
	IteratorType   = registerType("iterator", TagIterator)
	ExceptionType  = registerType("exception", TagException)
	TypeType       = registerType("type", TagType)
)

// TypeOf returns the canonical Type describing x's tag, per spec.md
// §6's `type_of`. Mutable/immutable pair members of a family
// (e.g. Int and IntStore) intentionally get distinct Type objects
// here, since objrt's object model treats them as sibling tags rather
// than one type with a mutability flag on the Type itself, matching how
// spec.md §3 enumerates them as one flat closed tag set.
func TypeOf(x Handle) *Type {
	if x.Tag() == TagBoolTrue {
		return BoolType
	}
	if t, ok := typeRegistry[x.Tag()]; ok {
		return t
	}
	return typeRegistry[TagException]
}
