// Package advancement implements the character-building engine: a tree of
// player choices, each of which validates and mutates a Character and reports
// whether it is complete, incomplete or invalid.
//
// Every apply method returns (done, err):
//
//	(true, nil)  the choice is fully made and was applied
//	(false, nil) the choice is not finished yet; nothing is wrong so far
//	(_, err)     the choice breaks a rule; err wraps a sentinel from this package
package advancement

import "github.com/cory-johannsen/fage2e/internal/game/character"

// Advancement is a node in the choice tree.
type Advancement interface {
	// ApplySelf applies this node's own effect, ignoring its children.
	ApplySelf(c *character.Character) (bool, error)
	// ForEach calls visit for each immediate child in declaration order.
	// Children are passed as pointers so visit may edit them in place.
	ForEach(visit func(Advancement))
}

// Applier is a choice with no children.
type Applier interface {
	Apply(c *character.Character) (bool, error)
}

type leaf struct {
	a Applier
}

// Leaf adapts an Applier into an Advancement with no children.
//
// Precondition: a must be non-nil and should be a pointer when the caller
// expects visitors to edit it.
func Leaf(a Applier) Advancement {
	return leaf{a: a}
}

func (l leaf) ApplySelf(c *character.Character) (bool, error) { return l.a.Apply(c) }
func (l leaf) ForEach(func(Advancement))                      {}

// Unwrap returns the adapted Applier.
func (l leaf) Unwrap() Applier { return l.a }

func (l leaf) NodeName() string {
	if n, ok := l.a.(Named); ok {
		return n.NodeName()
	}
	return ""
}

// Unwrap returns the Applier behind a Leaf, or nil when a is not a leaf.
func Unwrap(a Advancement) Applier {
	if l, ok := a.(leaf); ok {
		return l.a
	}
	return nil
}

// ApplyAll applies a and then every descendant.
//
// If a's own step fails, its error is returned and the children are skipped.
// Otherwise every child is applied even after one of them fails; the first
// child error is returned.
//
// Postcondition: done is true only when a and every descendant are complete.
func ApplyAll(a Advancement, c *character.Character) (bool, error) {
	selfDone, err := a.ApplySelf(c)
	if err != nil {
		return false, err
	}
	done := selfDone
	var firstErr error
	a.ForEach(func(child Advancement) {
		childDone, childErr := ApplyAll(child, c)
		if childErr != nil && firstErr == nil {
			firstErr = childErr
		}
		done = done && childDone
	})
	if firstErr != nil {
		return false, firstErr
	}
	return done, nil
}

// Status is the three-way outcome of an apply call.
type Status int

const (
	Incomplete Status = iota
	Complete
	Invalid
)

// StatusOf converts an apply result into a Status.
func StatusOf(done bool, err error) Status {
	switch {
	case err != nil:
		return Invalid
	case done:
		return Complete
	default:
		return Incomplete
	}
}

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Invalid:
		return "invalid"
	default:
		return "incomplete"
	}
}
