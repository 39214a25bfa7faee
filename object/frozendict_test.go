package object

import (
	"fmt"
	"testing"
)

func TestDictFromCLengthMismatch(t *testing.T) {
	_, ex := DictFromC([]Handle{IntFromC(1)}, nil)
	if !IsExceptionOf(ex, ValueError) {
		t.Fatalf("DictFromC(len mismatch): got %v, want ValueError", ex)
	}
}

func TestDictFromCRejectsMutableKey(t *testing.T) {
	_, ex := DictFromC([]Handle{ListFromC()}, []Handle{IntFromC(1)})
	if !IsExceptionOf(ex, TypeError) {
		t.Fatalf("DictFromC(mutable key): got %v, want TypeError", ex)
	}
}

func TestDictGetSetPopItem(t *testing.T) {
	d, ex := DictFromC(nil, nil)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	k := StrFromC("x")
	if ex := d.SetItem(k, IntFromC(1)); ex != nil {
		t.Fatalf("SetItem: %v", ex.Name())
	}
	v, ex := d.GetItem(StrFromC("x"))
	if ex != nil {
		t.Fatalf("GetItem: %v", ex.Name())
	}
	if v.(*Int).Value() != 1 {
		t.Fatalf("GetItem = %v, want 1", v)
	}
	popped, ex := d.PopItem(StrFromC("x"))
	if ex != nil {
		t.Fatalf("PopItem: %v", ex.Name())
	}
	if popped.(*Int).Value() != 1 {
		t.Fatalf("PopItem = %v, want 1", popped)
	}
	if _, ex := d.GetItem(StrFromC("x")); !IsExceptionOf(ex, KeyError) {
		t.Fatalf("GetItem after PopItem: got %v, want KeyError", ex)
	}
}

func TestDictIsUnhashable(t *testing.T) {
	d, _ := DictFromC(nil, nil)
	_, ex := CurrentHash(d)
	if !IsExceptionOf(ex, TypeError) {
		t.Fatalf("Dict.currentHash: got %v, want TypeError", ex)
	}
}

func TestFrozenDictHashOrderIndependent(t *testing.T) {
	a, ex := FrozenDictFromC(
		[]Handle{IntFromC(1), IntFromC(2)},
		[]Handle{StrFromC("one"), StrFromC("two")},
	)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	b, ex := FrozenDictFromC(
		[]Handle{IntFromC(2), IntFromC(1)},
		[]Handle{StrFromC("two"), StrFromC("one")},
	)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	ha, _ := CurrentHash(a)
	hb, _ := CurrentHash(b)
	if ha != hb {
		t.Fatalf("frozendict hash must be order-independent: got %d vs %d", ha, hb)
	}
}

func TestFrozenSetAndFrozenDictHashesDontCollideWhenEmpty(t *testing.T) {
	fs, _ := FrozenSetFromC()
	fd, _ := FrozenDictFromC(nil, nil)
	hs, _ := CurrentHash(fs)
	hd, _ := CurrentHash(fd)
	if hs == hd {
		t.Fatalf("empty frozenset and empty frozendict hash collided: %d", hs)
	}
}

func TestDictResizeRelocatesValues(t *testing.T) {
	d, _ := DictFromC(nil, nil)
	const n = 200
	for i := 0; i < n; i++ {
		k := Intern(fmt.Sprintf("key-%d", i))
		if ex := d.SetItem(k, IntFromC(int64(i))); ex != nil {
			t.Fatalf("SetItem(%d): %v", i, ex.Name())
		}
	}
	for i := 0; i < n; i++ {
		k := Intern(fmt.Sprintf("key-%d", i))
		v, ex := d.GetItem(k)
		if ex != nil {
			t.Fatalf("GetItem(%d): %v", i, ex.Name())
		}
		if v.(*Int).Value() != int64(i) {
			t.Fatalf("GetItem(%d) = %v, want %d (resize corrupted value slot)", i, v, i)
		}
	}
}
