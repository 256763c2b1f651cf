package cursors

// Category describes which operations a cursor guarantees.
// Categories ascend from Forward to RandomAccess; NoCommonCategory is the
// zero value and marks a composite cursor whose components disagree.
type Category int

const (
	// NoCommonCategory means no single category contract can be assumed.
	// Only dereference, equality and forward advance are guaranteed.
	NoCommonCategory Category = iota
	// Forward cursors support Next and Equal.
	Forward
	// Bidirectional cursors additionally support Prev.
	Bidirectional
	// RandomAccess cursors additionally support Add, Diff and Less.
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "none"
	}
}

// Common returns the category shared by every input.
//
// The rule is strict agreement: the result is the common category only when
// all inputs are exactly equal. Inputs that differ yield NoCommonCategory even
// when one is a refinement of the other (RandomAccess vs Bidirectional).
// No inputs also yields NoCommonCategory.
func Common(categories ...Category) Category {
	if len(categories) == 0 {
		return NoCommonCategory
	}
	first := categories[0]
	for _, c := range categories[1:] {
		if c != first {
			return NoCommonCategory
		}
	}
	return first
}

// Cap limits c to the richest contract a type actually provides.
// NoCommonCategory is never promoted.
func Cap(c, limit Category) Category {
	if c == NoCommonCategory {
		return NoCommonCategory
	}
	return min(c, limit)
}
