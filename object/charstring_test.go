package object

import "testing"

func TestStrIndexUnicode(t *testing.T) {
	s := StrFromC("héllo")
	v, ex := s.GetIndex(1)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	if v.(*Str).String() != "é" {
		t.Fatalf("GetIndex(1) = %q, want %q", v.(*Str).String(), "é")
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 code points", s.Len())
	}
}

func TestStrSlice(t *testing.T) {
	s := StrFromC("hello world")
	v, ex := s.GetSlice(0, 5, 1)
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	if v.(*Str).String() != "hello" {
		t.Fatalf("GetSlice(0,5,1) = %q, want %q", v.(*Str).String(), "hello")
	}
}

func TestStrEquality(t *testing.T) {
	a := StrFromC("same")
	b := StrFromC("same")
	if Eq(a, b) != True {
		t.Fatalf("equal strings should compare Eq == True")
	}
}

func TestChrArrayMutators(t *testing.T) {
	c := ChrArrayFromC("abc")
	if ex := c.Append(StrFromC("d")); ex != nil {
		t.Fatalf("Append: %v", ex.Name())
	}
	if c.String() != "abcd" {
		t.Fatalf("after Append: %q, want %q", c.String(), "abcd")
	}
	c.Reverse()
	if c.String() != "dcba" {
		t.Fatalf("after Reverse: %q, want %q", c.String(), "dcba")
	}
}

func TestInternReturnsCanonicalObject(t *testing.T) {
	a := Intern("shared")
	b := Intern("shared")
	if a != b {
		t.Fatalf("Intern did not dedupe identical strings")
	}
	if !a.Immortal() {
		t.Fatalf("interned string is not immortal")
	}
}
