// Circuit import: folding an externally-supplied gate sequence into an
// element. The sequence order is circuit order (first gate applied first);
// generators do not commute, so the fold order is part of the contract.

package clifford

import (
	"fmt"

	"github.com/kvantor/cliffgo/gates"
)

// FromGates folds an ordered elementary-gate sequence into a Clifford
// element on n qubits, starting from the identity.
//
// Any instruction outside the fixed generator set aborts with
// ErrNonClifford; arity and qubit-range violations surface the gates
// sentinels. On error the partial element is discarded.
// Complexity: O(len(seq)·n).
func FromGates(n int, seq []gates.Gate) (*Element, error) {
	elem, err := Identity(n)
	if err != nil {
		return nil, err
	}
	var g gates.Gate
	for _, g = range seq {
		if err = elem.Apply(g.Name, g.Qubits); err != nil {
			return nil, fmt.Errorf("FromGates: gate %q %v: %w", g.Name, g.Qubits, err)
		}
	}

	return elem, nil
}
