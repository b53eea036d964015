package axpy

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-q15/q15"
)

// ErrLengthMismatch is returned by Compare when the two vectors do not have
// the same length.
var ErrLengthMismatch = errors.New("axpy: compare length mismatch")

// Comparison reports the result of an elementwise equivalence check.
// When Equal is false, Index is the first diverging index and Ref/Test hold
// the two differing values.
type Comparison struct {
	Equal bool
	Index int
	Ref   q15.Sample
	Test  q15.Sample
}

// String returns a short human-readable summary of the comparison.
func (c Comparison) String() string {
	if c.Equal {
		return "equal"
	}
	return fmt.Sprintf("mismatch at index %d: ref=%d test=%d", c.Index, c.Ref, c.Test)
}

// Compare scans ref and test in index order and reports the first point of
// divergence. A mismatch is data, not an error: the error return is reserved
// for the precondition violation of unequal lengths.
func Compare(ref, test []q15.Sample) (Comparison, error) {
	if len(ref) != len(test) {
		return Comparison{}, fmt.Errorf("%w: ref=%d test=%d", ErrLengthMismatch, len(ref), len(test))
	}

	for i := range ref {
		if ref[i] != test[i] {
			return Comparison{Index: i, Ref: ref[i], Test: test[i]}, nil
		}
	}

	return Comparison{Equal: true}, nil
}
