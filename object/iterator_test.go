package object

import "testing"

func TestTupleIterDrains(t *testing.T) {
	tup := TupleFromC(IntFromC(1), IntFromC(2), IntFromC(3))
	it := tup.Iter()
	var got []int64
	for {
		v, ex, ok := it.Next()
		if ex != nil {
			t.Fatalf("unexpected exception: %v", ex.Name())
		}
		if !ok {
			break
		}
		got = append(got, v.(*Int).Value())
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Iter drained %v, want [1 2 3]", got)
	}
}

func TestSetIterVisitsEveryMember(t *testing.T) {
	s, _ := FrozenSetFromC(IntFromC(1), IntFromC(2), IntFromC(3))
	it := s.Iter()
	seen := map[int64]bool{}
	for {
		v, ex, ok := it.Next()
		if ex != nil {
			t.Fatalf("unexpected exception: %v", ex.Name())
		}
		if !ok {
			break
		}
		seen[v.(*Int).Value()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("set iterator saw %d distinct members, want 3", len(seen))
	}
}

func TestIteratorClosesOnExhaustion(t *testing.T) {
	tup := TupleFromC()
	it := tup.Iter()
	_, _, ok := it.Next()
	if ok {
		t.Fatalf("empty tuple's iterator should be exhausted immediately")
	}
	if !it.closed {
		t.Fatalf("iterator should auto-close on exhaustion")
	}
}

func TestTypeOfReturnsCanonicalSingleton(t *testing.T) {
	a := TypeOf(IntFromC(1))
	b := TypeOf(IntFromC(2))
	if a != b {
		t.Fatalf("TypeOf should return the same Type instance for every Int")
	}
	if a.Name() != "int" {
		t.Fatalf("TypeOf(Int) name = %q, want %q", a.Name(), "int")
	}
}
