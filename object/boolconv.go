package object

// BoolOf implements spec.md §4.2's object-suite `bool`: every concrete
// type decides its own truthiness via boolValue, the same dispatch
// pattern Hash uses for currentHash.
func BoolOf(x Handle) (bool, *Exception) {
	if ex := CheckUsable(x); ex != nil {
		return false, ex
	}
	if e, ok := Propagate(x); ok {
		return false, e.(*Exception)
	}
	bx, ok := x.(objectOps)
	if !ok {
		return false, MethodError
	}
	return bx.boolValue(), nil
}
