package object

import "testing"

func TestFloatHashMatchesEqualInt(t *testing.T) {
	// spec.md requires hash(3) == hash(3.0) so ints and floats stay
	// interchangeable as dict/set members.
	fh, ex := CurrentHash(FloatFromC(3.0))
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	ih, ex := CurrentHash(IntFromC(3))
	if ex != nil {
		t.Fatalf("unexpected exception: %v", ex.Name())
	}
	if fh != ih {
		t.Fatalf("hash(3.0) = %d, hash(3) = %d, want equal", fh, ih)
	}
}

func TestFloatFloorDivAndMod(t *testing.T) {
	got := floatArith(ArithFloorDiv, 7.5, 2.0)
	f, ok := got.(*Float)
	if !ok {
		t.Fatalf("got %T, want *Float", got)
	}
	if f.Value() != 3.0 {
		t.Fatalf("floor(7.5 // 2.0) = %v, want 3.0", f.Value())
	}

	got = floatArith(ArithMod, -7.5, 2.0)
	f, ok = got.(*Float)
	if !ok {
		t.Fatalf("got %T, want *Float", got)
	}
	// Python-style modulo takes the sign of the divisor.
	if f.Value() != 0.5 {
		t.Fatalf("-7.5 mod 2.0 = %v, want 0.5", f.Value())
	}
}

func TestFloatDivisionByZero(t *testing.T) {
	got := floatArith(ArithTrueDiv, 1.0, 0.0)
	if !IsExceptionOf(got, ZeroDivisionError) {
		t.Fatalf("1.0/0.0: got %#v, want ZeroDivisionError", got)
	}
}

func TestFloatStoreSetValueInvalidatesHash(t *testing.T) {
	s := FloatStoreFromC(1.5)
	h1, _ := CurrentHash(s)
	s.SetValue(2.5)
	h2, _ := CurrentHash(s)
	if h1 == h2 {
		t.Fatalf("hash unchanged after SetValue")
	}
}
