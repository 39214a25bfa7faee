package object

// Nil is the single immortal nil object (spec.md §3: "one immortal").
type Nil struct{ Header }

var _ Handle = (*Nil)(nil)
var _ hashableOps = (*Nil)(nil)
var _ comparisonOps = (*Nil)(nil)

// None is the sole Nil instance.
var None = newNil()

func newNil() *Nil {
	n := &Nil{}
	initHeader(&n.Header, TagNil, 0, 0)
	n.makeImmortal()
	return n
}

func (n *Nil) dealloc()        {}
func (n *Nil) boolValue() bool { return false }

func (n *Nil) currentHash(v *hashVisitor) (int64, *Exception) {
	return remapHash(0x5A5A), nil
}

func (n *Nil) compare(op CompareOp, other Handle) Handle {
	if _, ok := other.(*Nil); ok {
		switch op {
		case OpEq, OpLe, OpGe:
			return True
		case OpNe, OpLt, OpGt:
			return False
		}
	}
	return notImplemented()
}

// Nil has no mutable variant and no owned storage, so its lifecycle
// hooks are all trivial; clone always returns the sole None singleton.
func (n *Nil) freeze()                                          {}
func (n *Nil) clone(mutable, deep bool, memo *copyMemo) Handle { return None }
func (n *Nil) releaseContents()                                {}
