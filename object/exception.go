package object

// Exception implements spec.md §4.7: exception objects are immortal
// structs {name, super} forming a tree. Raising is by returning the
// exception handle; every operation's "discard *x and replace it with
// the exception" rule (spec.md §3, §7) is implemented by lifecycle.go
// and the runtime package's in-place operation signatures.
type Exception struct {
	Header
	name  string
	super *Exception
}

var _ Handle = (*Exception)(nil)

func newException(name string, super *Exception) *Exception {
	e := &Exception{name: name, super: super}
	initHeader(&e.Header, TagException, 0, 0)
	e.makeImmortal()
	return e
}

// Name returns the exception's declared name (e.g. "TypeError").
func (e *Exception) Name() string { return e.name }

// Super returns the exception's parent in the tree, or nil at the root.
func (e *Exception) Super() *Exception { return e.super }

// The exception tree, per spec.md §4.7 and §7's error taxonomy. Built
// bottom-up so every Super() pointer is already constructed.
var (
	BaseException = newException("BaseException", nil)

	KeyboardInterrupt = newException("KeyboardInterrupt", BaseException)
	SystemExit        = newException("SystemExit", BaseException)
	GeneratorExit     = newException("GeneratorExit", BaseException)

	Exc = newException("Exception", BaseException)

	StopIteration = newException("StopIteration", Exc)

	TypeError        = newException("TypeError", Exc)
	InvalidatedError = newException("InvalidatedError", TypeError)
	MethodError      = newException("MethodError", TypeError)

	ValueError   = newException("ValueError", Exc)
	UnicodeError = newException("UnicodeError", ValueError)

	LookupError = newException("LookupError", Exc)
	KeyError    = newException("KeyError", LookupError)
	IndexError  = newException("IndexError", LookupError)

	ArithmeticError   = newException("ArithmeticError", Exc)
	OverflowError     = newException("OverflowError", ArithmeticError)
	ZeroDivisionError = newException("ZeroDivisionError", ArithmeticError)
	FloatingPointError = newException("FloatingPointError", ArithmeticError)

	AttributeError = newException("AttributeError", Exc)

	MemoryError          = newException("MemoryError", Exc)
	SystemError          = newException("SystemError", Exc)
	SystemLimitationError = newException("SystemLimitationError", SystemError)

	RuntimeError      = newException("RuntimeError", Exc)
	RecursionLimitError = newException("RecursionLimitError", RuntimeError)
	NotImplementedError = newException("NotImplementedError", RuntimeError)

	// comparisonNotImplemented is internal-only per spec.md §4.4 and
	// §7: it must never escape the comparison dispatcher. It is not
	// exported; see compare.go.
	comparisonNotImplemented = newException("ComparisonNotImplemented", BaseException)
)

// IsException reports whether x is any kind of exception handle.
func IsException(x Handle) bool {
	_, ok := x.(*Exception)
	return ok
}

// IsExceptionOf reports whether x is e or a descendant of e in the
// exception tree (spec.md §4.7: "walks x.super chain looking for e").
func IsExceptionOf(x Handle, e *Exception) bool {
	xe, ok := x.(*Exception)
	if !ok {
		return false
	}
	for cur := xe; cur != nil; cur = cur.super {
		if cur == e {
			return true
		}
	}
	return false
}

// IsExceptionOfAny reports whether x is exception-of any of es.
func IsExceptionOfAny(x Handle, es ...*Exception) bool {
	for _, e := range es {
		if IsExceptionOf(x, e) {
			return true
		}
	}
	return false
}

// There are no default stub types for the "every type's slots are
// populated" rule from spec.md §4.2: see dispatch.go for how concrete
// types opt into the suites they implement, with the dispatch helpers
// returning MethodError when a type does not implement one.
