package runtime

import "testing"

func TestMain(m *testing.M) {
	if err := Initialize(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestInitializeIsIdempotent(t *testing.T) {
	if !Initialized() {
		t.Fatalf("Initialized() = false after TestMain's Initialize call")
	}
	if err := Initialize(WithRecursionLimit(1)); err != nil {
		t.Fatalf("second Initialize call returned an error: %v", err)
	}
}

func TestSequenceOpsOverTuple(t *testing.T) {
	tup := TupleFromC(IntFromC(1), IntFromC(2), IntFromC(3))
	n, ok := SeqLen(tup)
	if !ok || n != 3 {
		t.Fatalf("SeqLen = %d, %v, want 3, true", n, ok)
	}
	v, ex := SeqGetIndex(tup, 1)
	if ex != nil {
		t.Fatalf("SeqGetIndex: %v", ex.Name())
	}
	got, _ := AsIntC(v)
	if got != 2 {
		t.Fatalf("SeqGetIndex(1) = %d, want 2", got)
	}
}

func TestMutableSequenceOpsOverList(t *testing.T) {
	l := ListFromC(IntFromC(1))
	if ex := SeqAppend(l, IntFromC(2)); ex != nil {
		t.Fatalf("SeqAppend: %v", ex.Name())
	}
	n, _ := SeqLen(l)
	if n != 2 {
		t.Fatalf("SeqLen after append = %d, want 2", n)
	}
	if ex := SeqReverse(l); ex != nil {
		t.Fatalf("SeqReverse: %v", ex.Name())
	}
	first, _ := SeqGetIndex(l, 0)
	got, _ := AsIntC(first)
	if got != 2 {
		t.Fatalf("after reverse, index 0 = %d, want 2", got)
	}
}

func TestSetOpsOverFrozenSet(t *testing.T) {
	a, ex := FrozenSetFromC(IntFromC(1), IntFromC(2))
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	n, ok := SetLen(a)
	if !ok || n != 2 {
		t.Fatalf("SetLen = %d, %v, want 2, true", n, ok)
	}
	has, ex := SetContains(a, IntFromC(1))
	if ex != nil || !has {
		t.Fatalf("SetContains(1) = %v, %v, want true, nil", has, ex)
	}
}

func TestMappingOpsOverDict(t *testing.T) {
	d, ex := DictFromC(nil, nil)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	k := Intern("key")
	if ex := MapSetItem(d, k, IntFromC(7)); ex != nil {
		t.Fatalf("MapSetItem: %v", ex.Name())
	}
	v, ex := MapGetItem(d, Intern("key"))
	if ex != nil {
		t.Fatalf("MapGetItem: %v", ex.Name())
	}
	got, _ := AsIntC(v)
	if got != 7 {
		t.Fatalf("MapGetItem = %d, want 7", got)
	}
}

func TestIterationDrain(t *testing.T) {
	tup := TupleFromC(IntFromC(1), IntFromC(2))
	it := Iter(tup)
	if it == nil {
		t.Fatalf("Iter(tuple) = nil")
	}
	vals, ex := Drain(it)
	if ex != nil {
		t.Fatalf("Drain: %v", ex.Name())
	}
	if len(vals) != 2 {
		t.Fatalf("Drain returned %d values, want 2", len(vals))
	}
}

func TestConversionRoundTrip(t *testing.T) {
	s := StrFromC("hello")
	got, ok := AsStringC(s)
	if !ok || got != "hello" {
		t.Fatalf("AsStringC = %q, %v, want %q, true", got, ok, "hello")
	}
}
