package object

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// internTable deduplicates concurrent first-touch construction of
// interned immutable Str singletons. Unlike the small-int cache (eager,
// fixed at init), string interning is on-demand and unbounded, so two
// goroutines racing to intern the same identifier-like string must not
// each build and register a separate winner; singleflight.Group
// collapses concurrent callers for the same key onto one construction,
// exactly the shape x/sync/singleflight.Group documents for dedup'd
// cache population.
var internGroup singleflight.Group

var (
	internMu    sync.RWMutex
	internTable = map[string]*Str{}
)

// Intern returns the canonical Str for s, constructing and registering
// it on first use. Concurrent first-touch callers for the same s are
// collapsed onto a single construction via singleflight.
func Intern(s string) *Str {
	internMu.RLock()
	if v, ok := internTable[s]; ok {
		internMu.RUnlock()
		Incref(v)
		return v
	}
	internMu.RUnlock()

	v, _, _ := internGroup.Do(s, func() (interface{}, error) {
		internMu.Lock()
		defer internMu.Unlock()
		if v, ok := internTable[s]; ok {
			return v, nil
		}
		str := StrFromC(s)
		str.makeImmortal() // interned strings live for the process lifetime
		internTable[s] = str
		return str, nil
	})
	str := v.(*Str)
	Incref(str)
	return str
}

// InternedLen reports how many distinct strings are currently
// interned, for diagnostics (cmd/objrt-inspect).
func InternedLen() int {
	internMu.RLock()
	defer internMu.RUnlock()
	return len(internTable)
}
