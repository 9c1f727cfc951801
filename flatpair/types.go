package flatpair

import "errors"

// Sentinel errors for flatpair operations.
var (
	// ErrSyntax indicates malformed bracket notation.
	ErrSyntax = errors.New("flatpair: syntax error")

	// ErrMalformed indicates a record sequence that is not a well-formed nesting.
	ErrMalformed = errors.New("flatpair: malformed record sequence")

	// ErrNilNumber is returned when a nil *Number is passed.
	ErrNilNumber = errors.New("flatpair: number is nil")
)

// Side tells which child of its parent a leaf is.
type Side uint8

const (
	// Root marks a leaf that is the whole number.
	Root Side = iota
	// Left marks a left child.
	Left
	// Right marks a right child.
	Right
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "root"
	}
}

// Record is one leaf of a flattened compound number.
type Record struct {
	Value uint64
	Depth int
	Side  Side
}

// Number is a compound number stored as its leaves in reading order.
type Number struct {
	records []Record
}

// Len returns the number of leaves.
func (n *Number) Len() int { return len(n.records) }

// Records returns a copy of the leaf records in reading order.
func (n *Number) Records() []Record {
	out := make([]Record, len(n.records))
	copy(out, n.records)

	return out
}

// Clone returns an independent copy of n.
func (n *Number) Clone() *Number {
	return &Number{records: n.Records()}
}

// Equal reports whether n and other hold identical records.
func (n *Number) Equal(other *Number) bool {
	if len(n.records) != len(other.records) {
		return false
	}
	for i := range n.records {
		if n.records[i] != other.records[i] {
			return false
		}
	}

	return true
}
