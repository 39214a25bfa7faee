package hashtable

import "testing"

type intKey int

func (k intKey) Equal(other Key) (bool, error) {
	o, ok := other.(intKey)
	if !ok {
		return false, nil
	}
	return k == o, nil
}

func hashOf(k intKey) uint64 { return uint64(k) * 0x9E3779B97F4A7C15 }

func TestInsertLookupDelete(t *testing.T) {
	tbl := New(0)
	for i := 0; i < 100; i++ {
		k := intKey(i)
		if _, inserted, err := tbl.Insert(hashOf(k), k); err != nil || !inserted {
			t.Fatalf("insert %d: inserted=%v err=%v", i, inserted, err)
		}
	}
	if tbl.Len() != 100 {
		t.Fatalf("len = %d, want 100", tbl.Len())
	}
	for i := 0; i < 100; i++ {
		k := intKey(i)
		_, found, err := tbl.Lookup(hashOf(k), k)
		if err != nil || !found {
			t.Fatalf("lookup %d: found=%v err=%v", i, found, err)
		}
	}
	for i := 0; i < 50; i++ {
		k := intKey(i)
		removed, _, err := tbl.Delete(hashOf(k), k)
		if err != nil || !removed {
			t.Fatalf("delete %d: removed=%v err=%v", i, removed, err)
		}
	}
	if tbl.Len() != 50 {
		t.Fatalf("len after delete = %d, want 50", tbl.Len())
	}
}

func TestFillFactorInvariant(t *testing.T) {
	tbl := New(0)
	for i := 0; i < 1000; i++ {
		k := intKey(i)
		if _, _, err := tbl.Insert(hashOf(k), k); err != nil {
			t.Fatal(err)
		}
		if tbl.fill > (2*tbl.Cap())/3 {
			t.Fatalf("fill factor invariant violated at i=%d: fill=%d cap=%d", i, tbl.fill, tbl.Cap())
		}
	}
}

func TestHashCollisionResilience(t *testing.T) {
	// All keys collide mod any capacity by construction.
	tbl := New(0)
	const n = 64
	for i := 0; i < n; i++ {
		k := intKey(i)
		if _, _, err := tbl.Insert(0, k); err != nil {
			t.Fatal(err)
		}
	}
	if tbl.Len() != n {
		t.Fatalf("len = %d, want %d", tbl.Len(), n)
	}
	for i := 0; i < n; i++ {
		k := intKey(i)
		if _, found, err := tbl.Lookup(0, k); err != nil || !found {
			t.Fatalf("lookup %d failed: found=%v err=%v", i, found, err)
		}
	}
}

func TestPopArbitraryDrainsAll(t *testing.T) {
	tbl := New(0)
	for i := 0; i < 20; i++ {
		k := intKey(i)
		tbl.Insert(hashOf(k), k)
	}
	seen := map[int]bool{}
	for tbl.Len() > 0 {
		k, ok := tbl.PopArbitrary()
		if !ok {
			t.Fatal("PopArbitrary returned !ok while Len() > 0")
		}
		seen[int(k.(intKey))] = true
	}
	if len(seen) != 20 {
		t.Fatalf("drained %d distinct keys, want 20", len(seen))
	}
}

func TestSetOps(t *testing.T) {
	abra := New(0) // "abracadabra"
	for _, c := range "abracadabra" {
		k := intKey(c)
		abra.Insert(hashOf(k), k)
	}
	if abra.Len() != 5 {
		t.Fatalf("len(abra) = %d, want 5", abra.Len())
	}
	alacazam := New(0)
	for _, c := range "alacazam" {
		k := intKey(c)
		alacazam.Insert(hashOf(k), k)
	}

	diff := abra.Clone()
	if err := diff.DifferenceUpdateFrom(alacazam); err != nil {
		t.Fatal(err)
	}
	if diff.Len() != 3 {
		t.Fatalf("len(diff) = %d, want 3", diff.Len())
	}
	if _, found, _ := diff.Index(hashOf('b'), intKey('b')); !found {
		t.Fatal("diff should contain 'b'")
	}
	if _, found, _ := diff.Index(hashOf('a'), intKey('a')); found {
		t.Fatal("diff should not contain 'a'")
	}

	union := abra.Clone()
	if err := union.UpdateFrom(alacazam); err != nil {
		t.Fatal(err)
	}
	if union.Len() != 8 {
		t.Fatalf("len(union) = %d, want 8", union.Len())
	}

	inter := abra.Clone()
	if err := inter.IntersectionUpdateFrom(alacazam); err != nil {
		t.Fatal(err)
	}
	if inter.Len() != 2 {
		t.Fatalf("len(inter) = %d, want 2", inter.Len())
	}
}

func TestValuesNullMeansAbsent(t *testing.T) {
	vs := NewValues[string](8)
	vs.Set(3, "x")
	if vs.Len() != 1 {
		t.Fatalf("len = %d, want 1", vs.Len())
	}
	if v, ok := vs.Get(3); !ok || v != "x" {
		t.Fatalf("get(3) = %q, %v", v, ok)
	}
	vs.Clear(3)
	if vs.Len() != 0 {
		t.Fatalf("len after clear = %d, want 0", vs.Len())
	}
	if _, ok := vs.Get(3); ok {
		t.Fatal("expected absent after Clear")
	}
}
