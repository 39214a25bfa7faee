package object

import "testing"

func TestBoolTagsAreNotTreatedAsAMutablePair(t *testing.T) {
	if TagBoolTrue.IsMutable() {
		t.Fatalf("TagBoolTrue.IsMutable() = true, want false")
	}
	if TagBoolFalse.IsMutable() {
		t.Fatalf("TagBoolFalse.IsMutable() = true, want false")
	}
	if TagBoolTrue.PairCode() != TagBoolTrue {
		t.Fatalf("TagBoolTrue.PairCode() = %v, want TagBoolTrue", TagBoolTrue.PairCode())
	}
	if TagBoolFalse.PairCode() != TagBoolFalse {
		t.Fatalf("TagBoolFalse.PairCode() = %v, want TagBoolFalse", TagBoolFalse.PairCode())
	}
}

func TestListTagIsStillTreatedAsMutable(t *testing.T) {
	if !TagList.IsMutable() {
		t.Fatalf("TagList.IsMutable() = false, want true")
	}
	if TagList.PairCode() != TagTuple {
		t.Fatalf("TagList.PairCode() = %v, want TagTuple", TagList.PairCode())
	}
}
