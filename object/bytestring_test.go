package object

import "testing"

func TestBytesIndexAndSlice(t *testing.T) {
	b := BytesFromC([]byte("hello"))
	v, ex := b.GetIndex(1)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	if n, ok := v.(*Int); !ok || n.Value() != 'e' {
		t.Fatalf("GetIndex(1) = %#v, want Int('e')", v)
	}

	sl, ex := b.GetSlice(1, 4, 1)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	sb, ok := sl.(*Bytes)
	if !ok {
		t.Fatalf("GetSlice: got %T, want *Bytes", sl)
	}
	if string(sb.Bytes()) != "ell" {
		t.Fatalf("GetSlice(1,4,1) = %q, want %q", sb.Bytes(), "ell")
	}
}

func TestBytesNegativeIndex(t *testing.T) {
	b := BytesFromC([]byte("hello"))
	v, ex := b.GetIndex(-1)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	if n := v.(*Int).Value(); n != 'o' {
		t.Fatalf("GetIndex(-1) = %d, want 'o'", n)
	}
}

func TestBytesIndexOutOfRange(t *testing.T) {
	b := BytesFromC([]byte("hi"))
	_, ex := b.GetIndex(10)
	if !IsExceptionOf(ex, IndexError) {
		t.Fatalf("GetIndex(10): got %v, want IndexError", ex)
	}
}

func TestByteArrayMutators(t *testing.T) {
	a := ByteArrayFromC([]byte("abc"))
	if ex := a.Append(IntFromC('d')); ex != nil {
		t.Fatalf("Append: %v", ex.Name())
	}
	if string(a.Bytes()) != "abcd" {
		t.Fatalf("after Append: %q, want %q", a.Bytes(), "abcd")
	}
	if ex := a.SetIndex(0, IntFromC('A')); ex != nil {
		t.Fatalf("SetIndex: %v", ex.Name())
	}
	if string(a.Bytes()) != "Abcd" {
		t.Fatalf("after SetIndex: %q, want %q", a.Bytes(), "Abcd")
	}
	a.Reverse()
	if string(a.Bytes()) != "dcbA" {
		t.Fatalf("after Reverse: %q, want %q", a.Bytes(), "dcbA")
	}
	v, ex := a.PopIndex(0)
	if ex != nil {
		t.Fatalf("PopIndex: %v", ex.Name())
	}
	if v.(*Int).Value() != 'd' {
		t.Fatalf("PopIndex(0) = %v, want 'd'", v)
	}
	if string(a.Bytes()) != "cbA" {
		t.Fatalf("after PopIndex: %q, want %q", a.Bytes(), "cbA")
	}
}

func TestByteArrayInvalidatesCachedHashOnMutation(t *testing.T) {
	a := ByteArrayFromC([]byte("abc"))
	h1, _ := CurrentHash(a)
	_ = a.Append(IntFromC('d'))
	h2, _ := CurrentHash(a)
	if h1 == h2 {
		t.Fatalf("hash unchanged after Append")
	}
}

func TestBytesEquality(t *testing.T) {
	a := BytesFromC([]byte("same"))
	b := BytesFromC([]byte("same"))
	if Eq(a, b) != True {
		t.Fatalf("equal byte contents should compare Eq == True")
	}
}
