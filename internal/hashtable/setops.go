package hashtable

// The set-algebra helpers below implement spec.md §4.6's "Set operations
// built on the engine" verbatim, operating on two Tables directly so
// object's frozenset/set types can share one implementation regardless
// of mutability.

// UpdateFrom adds every key of other into t ("update_from_set"): if t is
// empty and has no tombstones, keys are clean-inserted; otherwise each
// key is probed and skipped if already present.
func (t *Table) UpdateFrom(other *Table) error {
	clean := t.active == 0 && t.fill == 0
	if clean && other.active > t.spaceRemaining() {
		_ = t.Grow(other.active)
	}
	var firstErr error
	other.Each(func(h uint64, k Key) bool {
		if clean {
			t.CleanInsert(h, k)
			return true
		}
		if t.spaceRemaining() <= 0 {
			_ = t.Grow(growthRequiredFor(t.active + 1))
		}
		if _, _, err := t.Insert(h, k); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

// DifferenceUpdateFrom removes from t every key also present in other
// ("difference_update_from_set").
func (t *Table) DifferenceUpdateFrom(other *Table) error {
	var firstErr error
	other.Each(func(h uint64, k Key) bool {
		if _, _, err := t.Delete(h, k); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

// IntersectionUpdateFrom removes from t every key not present in other
// ("intersection_update_from_set"): iterate t, delete those not found in
// other.
func (t *Table) IntersectionUpdateFrom(other *Table) error {
	var toRemove []struct {
		h uint64
		k Key
	}
	var firstErr error
	t.Each(func(h uint64, k Key) bool {
		_, found, err := other.Index(h, k)
		if err != nil {
			firstErr = err
			return false
		}
		if !found {
			toRemove = append(toRemove, struct {
				h uint64
				k Key
			}{h, k})
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}
	for _, r := range toRemove {
		if _, _, err := t.Delete(r.h, r.k); err != nil {
			return err
		}
	}
	return nil
}

// SymmetricDifferenceUpdateFrom implements "symmetric_difference_update_
// from_set": iterate other; for each key, pop it from t if present, else
// push it.
func (t *Table) SymmetricDifferenceUpdateFrom(other *Table) error {
	var firstErr error
	other.Each(func(h uint64, k Key) bool {
		_, found, err := t.Index(h, k)
		if err != nil {
			firstErr = err
			return false
		}
		if found {
			if _, _, err := t.Delete(h, k); err != nil {
				firstErr = err
				return false
			}
			return true
		}
		if t.spaceRemaining() <= 0 {
			_ = t.Grow(growthRequiredFor(t.active + 1))
		}
		if _, _, err := t.Insert(h, k); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

// IsDisjoint reports whether t and other share no keys.
func (t *Table) IsDisjoint(other *Table) (bool, error) {
	small, big := t, other
	if small.active > big.active {
		small, big = big, small
	}
	disjoint := true
	var firstErr error
	small.Each(func(h uint64, k Key) bool {
		_, found, err := big.Index(h, k)
		if err != nil {
			firstErr = err
			return false
		}
		if found {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint, firstErr
}

// IsSubsetOf reports whether every key of t is present in other.
func (t *Table) IsSubsetOf(other *Table) (bool, error) {
	if t.active > other.active {
		return false, nil
	}
	subset := true
	var firstErr error
	t.Each(func(h uint64, k Key) bool {
		_, found, err := other.Index(h, k)
		if err != nil {
			firstErr = err
			return false
		}
		if !found {
			subset = false
			return false
		}
		return true
	})
	return subset, firstErr
}
