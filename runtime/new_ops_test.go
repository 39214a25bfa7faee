package runtime

import (
	"testing"

	"github.com/objrt/objrt/object"
)

func TestSeqFindIndexCount(t *testing.T) {
	l := ListFromC(IntFromC(1), IntFromC(2), IntFromC(2), IntFromC(3))
	i, ex := SeqFind(l, IntFromC(2))
	if ex != nil || i != 1 {
		t.Fatalf("SeqFind(2) = %d, %v, want 1, nil", i, ex)
	}
	if i, ex := SeqFind(l, IntFromC(9)); ex != nil || i != -1 {
		t.Fatalf("SeqFind(9) = %d, %v, want -1, nil", i, ex)
	}
	if _, ex := SeqIndex(l, IntFromC(9)); !IsExceptionOf(ex, object.ValueError) {
		t.Fatalf("SeqIndex(9) = %v, want ValueError", ex)
	}
	c, ex := SeqCount(l, IntFromC(2))
	if ex != nil || c != 2 {
		t.Fatalf("SeqCount(2) = %d, %v, want 2, nil", c, ex)
	}
}

func TestSeqExtendIRepeatRemove(t *testing.T) {
	l := ListFromC(IntFromC(1), IntFromC(2))
	tail := ListFromC(IntFromC(3), IntFromC(4))
	if ex := SeqExtend(l, tail); ex != nil {
		t.Fatalf("SeqExtend: %v", ex.Name())
	}
	if n, _ := SeqLen(l); n != 4 {
		t.Fatalf("len after extend = %d, want 4", n)
	}
	if ex := SeqIRepeat(l, 2); ex != nil {
		t.Fatalf("SeqIRepeat: %v", ex.Name())
	}
	if n, _ := SeqLen(l); n != 8 {
		t.Fatalf("len after irepeat(2) = %d, want 8", n)
	}
	if ex := SeqRemove(l, IntFromC(3)); ex != nil {
		t.Fatalf("SeqRemove(3): %v", ex.Name())
	}
	if n, _ := SeqLen(l); n != 7 {
		t.Fatalf("len after remove = %d, want 7", n)
	}
	if ex := SeqRemove(l, IntFromC(999)); !IsExceptionOf(ex, object.ValueError) {
		t.Fatalf("SeqRemove(999) = %v, want ValueError", ex)
	}
}

func TestSeqDelSliceAndSetSlice(t *testing.T) {
	l := ListFromC(IntFromC(0), IntFromC(1), IntFromC(2), IntFromC(3), IntFromC(4))
	if ex := SeqDelSlice(l, 1, 3, 1); ex != nil {
		t.Fatalf("SeqDelSlice: %v", ex.Name())
	}
	if n, _ := SeqLen(l); n != 3 {
		t.Fatalf("len after delslice = %d, want 3", n)
	}
	repl := ListFromC(IntFromC(9), IntFromC(9))
	if ex := SeqSetSlice(l, 1, 1, 1, repl); ex != nil {
		t.Fatalf("SeqSetSlice: %v", ex.Name())
	}
	if n, _ := SeqLen(l); n != 5 {
		t.Fatalf("len after setslice insert = %d, want 5", n)
	}
}

func TestSetInPlaceUpdates(t *testing.T) {
	a, ex := SetFromC(IntFromC(1), IntFromC(2))
	if ex != nil {
		t.Fatalf("SetFromC: %v", ex.Name())
	}
	b, ex := FrozenSetFromC(IntFromC(2), IntFromC(3))
	if ex != nil {
		t.Fatalf("FrozenSetFromC: %v", ex.Name())
	}
	if ex := SetUpdate(a, b); ex != nil {
		t.Fatalf("SetUpdate: %v", ex.Name())
	}
	if n, _ := SetLen(a); n != 3 {
		t.Fatalf("len after update = %d, want 3", n)
	}
	if ex := SetIntersectionUpdate(a, b); ex != nil {
		t.Fatalf("SetIntersectionUpdate: %v", ex.Name())
	}
	if n, _ := SetLen(a); n != 2 {
		t.Fatalf("len after intersection_update = %d, want 2", n)
	}
}

func TestMapGetDefaultSetDefaultUpdate(t *testing.T) {
	d, ex := DictFromC(nil, nil)
	if ex != nil {
		t.Fatalf("DictFromC: %v", ex.Name())
	}
	v, ex := MapGetDefault(d, Intern("missing"), IntFromC(42))
	if ex != nil {
		t.Fatalf("MapGetDefault: %v", ex.Name())
	}
	if got, _ := AsIntC(v); got != 42 {
		t.Fatalf("GetDefault(missing) = %d, want 42", got)
	}
	sv, ex := MapSetDefault(d, Intern("k"), IntFromC(7))
	if ex != nil {
		t.Fatalf("MapSetDefault: %v", ex.Name())
	}
	if got, _ := AsIntC(sv); got != 7 {
		t.Fatalf("SetDefault(k) = %d, want 7", got)
	}
	other, ex := DictFromC([]Handle{Intern("k")}, []Handle{IntFromC(100)})
	if ex != nil {
		t.Fatalf("DictFromC(other): %v", ex.Name())
	}
	if ex := MapUpdate(d, other); ex != nil {
		t.Fatalf("MapUpdate: %v", ex.Name())
	}
	got, ex := MapGetItem(d, Intern("k"))
	if ex != nil {
		t.Fatalf("MapGetItem(k): %v", ex.Name())
	}
	if n, _ := AsIntC(got); n != 100 {
		t.Fatalf("after update, k = %d, want 100", n)
	}
}

func TestMapIterItemsAndValues(t *testing.T) {
	d, ex := DictFromC([]Handle{Intern("a"), Intern("b")}, []Handle{IntFromC(1), IntFromC(2)})
	if ex != nil {
		t.Fatalf("DictFromC: %v", ex.Name())
	}
	it, ex := MapIterItems(d)
	if ex != nil {
		t.Fatalf("MapIterItems: %v", ex.Name())
	}
	pairs, ex := Drain(it)
	if ex != nil {
		t.Fatalf("Drain(items): %v", ex.Name())
	}
	if len(pairs) != 2 {
		t.Fatalf("items count = %d, want 2", len(pairs))
	}
	for _, p := range pairs {
		n, ok := SeqLen(p)
		if !ok || n != 2 {
			t.Fatalf("each item should be a 2-tuple, got len %d, %v", n, ok)
		}
	}
	vit, ex := MapIterValues(d)
	if ex != nil {
		t.Fatalf("MapIterValues: %v", ex.Name())
	}
	vals, ex := Drain(vit)
	if ex != nil {
		t.Fatalf("Drain(values): %v", ex.Name())
	}
	if len(vals) != 2 {
		t.Fatalf("values count = %d, want 2", len(vals))
	}
}

func TestAsIntNCOverflow(t *testing.T) {
	if _, ex := AsIntNC(IntFromC(200), 8, true); !IsExceptionOf(ex, object.OverflowError) {
		t.Fatalf("as_int8_c(200) = %v, want OverflowError", ex)
	}
	v, ex := AsIntNC(IntFromC(100), 8, true)
	if ex != nil || v != 100 {
		t.Fatalf("as_int8_c(100) = %d, %v, want 100, nil", v, ex)
	}
	if _, ex := AsIntNC(IntFromC(-1), 8, false); !IsExceptionOf(ex, object.OverflowError) {
		t.Fatalf("as_uint8_c(-1) = %v, want OverflowError", ex)
	}
}

func TestContainerSuiteGeneric(t *testing.T) {
	l := ListFromC(IntFromC(1))
	if ex := Push(l, IntFromC(2)); ex != nil {
		t.Fatalf("Push: %v", ex.Name())
	}
	has, ex := Contains(l, IntFromC(2))
	if ex != nil || !has {
		t.Fatalf("Contains(2) = %v, %v, want true, nil", has, ex)
	}
	notHas, ex := NotContains(l, IntFromC(9))
	if ex != nil || !notHas {
		t.Fatalf("NotContains(9) = %v, %v, want true, nil", notHas, ex)
	}
	v, ex := Pop(l)
	if ex != nil {
		t.Fatalf("Pop: %v", ex.Name())
	}
	got, _ := AsIntC(v)
	if got != 2 {
		t.Fatalf("Pop() = %d, want 2", got)
	}
	if ex := Clear(l); ex != nil {
		t.Fatalf("Clear: %v", ex.Name())
	}
	if n, _ := SeqLen(l); n != 0 {
		t.Fatalf("len after Clear = %d, want 0", n)
	}
}

func TestSeqSortOrdersInPlace(t *testing.T) {
	l := ListFromC(IntFromC(3), IntFromC(1), IntFromC(2))
	if ex := SeqSort(l); ex != nil {
		t.Fatalf("SeqSort: %v", ex.Name())
	}
	for i, want := range []int64{1, 2, 3} {
		v, ex := SeqGetIndex(l, i)
		if ex != nil {
			t.Fatalf("SeqGetIndex(%d): %v", i, ex.Name())
		}
		got, _ := AsIntC(v)
		if got != want {
			t.Fatalf("sorted[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestGenericBoolNotOrNAndN(t *testing.T) {
	if v, ex := Bool(IntFromC(0)); ex != nil || v {
		t.Fatalf("Bool(0) = %v, %v, want false, nil", v, ex)
	}
	if v, ex := Not(IntFromC(0)); ex != nil || !v {
		t.Fatalf("Not(0) = %v, %v, want true, nil", v, ex)
	}
	r := OrN(IntFromC(0), IntFromC(0), IntFromC(5))
	if got, _ := AsIntC(r); got != 5 {
		t.Fatalf("OrN(0, 0, 5) = %v, want 5", got)
	}
	r = AndN(IntFromC(1), IntFromC(0), IntFromC(5))
	if got, _ := AsIntC(r); got != 0 {
		t.Fatalf("AndN(1, 0, 5) = %v, want 0", got)
	}
}

func TestGenericAnyAllLen(t *testing.T) {
	l := ListFromC(IntFromC(0), IntFromC(0), IntFromC(1))
	any, ex := Any(l)
	if ex != nil || !any {
		t.Fatalf("Any([0,0,1]) = %v, %v, want true, nil", any, ex)
	}
	all, ex := All(l)
	if ex != nil || all {
		t.Fatalf("All([0,0,1]) = %v, %v, want false, nil", all, ex)
	}
	n, ex := Len(l)
	if ex != nil || n != 3 {
		t.Fatalf("Len([0,0,1]) = %d, %v, want 3, nil", n, ex)
	}
}

func TestIterReversedWalksBackToFront(t *testing.T) {
	l := ListFromC(IntFromC(1), IntFromC(2), IntFromC(3))
	it := IterReversed(l)
	if it == nil {
		t.Fatalf("IterReversed(list) = nil")
	}
	vals, ex := Drain(it)
	if ex != nil {
		t.Fatalf("Drain: %v", ex.Name())
	}
	want := []int64{3, 2, 1}
	if len(vals) != len(want) {
		t.Fatalf("len(vals) = %d, want %d", len(vals), len(want))
	}
	for i, w := range want {
		got, _ := AsIntC(vals[i])
		if got != w {
			t.Fatalf("vals[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestByteArrayGrowsThroughAllocator(t *testing.T) {
	y := ByteArrayFromC([]byte("ab"))
	for i := 0; i < 40; i++ {
		if ex := SeqAppend(y, IntFromC('x')); ex != nil {
			t.Fatalf("SeqAppend: %v", ex.Name())
		}
	}
	n, _ := SeqLen(y)
	if n != 42 {
		t.Fatalf("len after 40 appends = %d, want 42", n)
	}
	got, ok := AsBytesC(y)
	if !ok || string(got[:2]) != "ab" || len(got) != 42 {
		t.Fatalf("unexpected ByteArray contents: %q, %v", got, ok)
	}
}

func TestIteratorSendNextAndThrow(t *testing.T) {
	tup := TupleFromC(IntFromC(1), IntFromC(2))
	it := Iter(tup)
	v, ex, ok := Send(it, nil)
	if ex != nil || !ok {
		t.Fatalf("Send(it, nil): ex=%v ok=%v", ex, ok)
	}
	got, _ := AsIntC(v)
	if got != 1 {
		t.Fatalf("Send(it, nil) = %d, want 1", got)
	}
	exc := object.ValueError
	_, thrown, ok := Throw(it, exc)
	if ok || thrown != exc {
		t.Fatalf("Throw = %v, %v, want the injected exception, false", thrown, ok)
	}
	if _, _, ok := Next(it); ok {
		t.Fatalf("iterator should be closed after Throw")
	}
}
