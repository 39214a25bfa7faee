package object

import "testing"

func TestTupleOrderedHash(t *testing.T) {
	a := TupleFromC(IntFromC(1), IntFromC(2))
	b := TupleFromC(IntFromC(2), IntFromC(1))
	ha, _ := CurrentHash(a)
	hb, _ := CurrentHash(b)
	if ha == hb {
		t.Fatalf("tuple hash must be order-sensitive: (1,2) and (2,1) collided")
	}
}

func TestListIsUnhashable(t *testing.T) {
	l := ListFromC(IntFromC(1))
	_, ex := CurrentHash(l)
	if !IsExceptionOf(ex, TypeError) {
		t.Fatalf("List.currentHash: got %v, want TypeError", ex)
	}
}

func TestTupleSequenceCompare(t *testing.T) {
	a := TupleFromC(IntFromC(1), IntFromC(2))
	b := TupleFromC(IntFromC(1), IntFromC(3))
	if Lt(a, b) != True {
		t.Fatalf("(1,2) should be < (1,3) lexicographically")
	}
}

func TestListMutators(t *testing.T) {
	l := ListFromC(IntFromC(1), IntFromC(2), IntFromC(3))
	if ex := l.Append(IntFromC(4)); ex != nil {
		t.Fatalf("Append: %v", ex.Name())
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	v, ex := l.PopIndex(0)
	if ex != nil {
		t.Fatalf("PopIndex: %v", ex.Name())
	}
	if v.(*Int).Value() != 1 {
		t.Fatalf("PopIndex(0) = %v, want 1", v)
	}
	l.Reverse()
	first, _ := l.GetIndex(0)
	if first.(*Int).Value() != 4 {
		t.Fatalf("after Reverse, GetIndex(0) = %v, want 4", first)
	}
}

func TestDeepCopyBreaksAliasing(t *testing.T) {
	inner := ListFromC(IntFromC(1))
	outer := ListFromC(inner)
	Incref(outer)

	copied := DeepCopy(outer)
	cl, ok := copied.(*List)
	if !ok {
		t.Fatalf("DeepCopy returned %T, want *List", copied)
	}
	innerCopy, _ := cl.GetIndex(0)
	if innerCopy.(*List) == inner {
		t.Fatalf("DeepCopy aliased the original inner list")
	}

	_ = innerCopy.(*List).Append(IntFromC(99))
	if origLen := inner.Len(); origLen != 1 {
		t.Fatalf("mutating the deep copy's inner list affected the original: len=%d", origLen)
	}
}

func TestDeepCopyHandlesCycles(t *testing.T) {
	l := ListFromC()
	Incref(l)
	_ = l.Append(l) // l now contains itself

	copied := DeepCopy(l)
	cl := copied.(*List)
	self, _ := cl.GetIndex(0)
	if self.(*List) != cl {
		t.Fatalf("DeepCopy of a self-referential list did not preserve the cycle")
	}
}
