// Dispatch surface: gate descriptors, name canonicalization, and the
// validated Apply entry point.

package gates

import (
	"fmt"
	"sort"

	"github.com/kvantor/cliffgo/tableau"
)

// Gate describes one elementary Clifford generator placed on specific
// qubits: a name from the fixed generator set and an ordered list of 1 or 2
// target qubit indices. It carries no parameters.
type Gate struct {
	Name   string `yaml:"name" json:"name"`
	Qubits []int  `yaml:"qubits" json:"qubits"`
}

// rule pairs a generator's arity with its pure tableau transform. The
// transform may assume qubits has the right length and in-range, distinct
// indices; validation happens in Apply.
type rule struct {
	arity int
	apply func(t *tableau.Tableau, qubits []int)
}

// aliases maps accepted alternative spellings onto canonical names.
var aliases = map[string]string{
	"id":   "i",
	"iden": "i",
	"sinv": "sdg",
}

// rules is the immutable generator dispatch table, built once at process
// start. Lookup is O(1); the table is never mutated afterwards.
var rules = map[string]rule{
	"i":    {1, applyI},
	"x":    {1, applyX},
	"y":    {1, applyY},
	"z":    {1, applyZ},
	"h":    {1, applyH},
	"s":    {1, applyS},
	"sdg":  {1, applySdg},
	"v":    {1, applyV},
	"w":    {1, applyW},
	"cx":   {2, applyCX},
	"cz":   {2, applyCZ},
	"swap": {2, applySwap},
}

// canonical resolves aliases to the canonical generator name, or returns
// ErrUnknownGate for names outside the set.
func canonical(name string) (string, error) {
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if _, ok := rules[name]; !ok {
		return "", fmt.Errorf("gates: %q: %w", name, ErrUnknownGate)
	}

	return name, nil
}

// IsClifford reports whether name (or one of its aliases) belongs to the
// elementary Clifford generator set.
// Complexity: O(1).
func IsClifford(name string) bool {
	_, err := canonical(name)

	return err == nil
}

// Arity returns the number of target qubits the named generator takes.
// Complexity: O(1).
func Arity(name string) (int, error) {
	cname, err := canonical(name)
	if err != nil {
		return 0, err
	}

	return rules[cname].arity, nil
}

// Names returns the canonical generator names in sorted order.
// Complexity: O(1) table size; sorted for deterministic output.
func Names() []string {
	out := make([]string, 0, len(rules))
	for name := range rules {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Apply applies the named generator to the given qubits of t, mutating it in
// place. t must be exclusively owned by the caller.
// Stage 1 (Validate): canonical name, arity, qubit bounds, distinct targets.
// Stage 2 (Execute): run the column-wise transform.
// A failing call leaves t unmodified.
// Complexity: O(N) for 2N rows.
func Apply(t *tableau.Tableau, name string, qubits []int) error {
	// 1. Resolve the generator
	cname, err := canonical(name)
	if err != nil {
		return err
	}
	r := rules[cname]

	// 2. Arity check
	if len(qubits) != r.arity {
		return fmt.Errorf("gates: %q takes %d qubit(s), got %d: %w", cname, r.arity, len(qubits), ErrArity)
	}

	// 3. Bounds check against the tableau's qubit count
	var q int
	for _, q = range qubits {
		if q < 0 || q >= t.NQubits() {
			return fmt.Errorf("gates: %q on qubit %d of %d: %w", cname, q, t.NQubits(), ErrQubitRange)
		}
	}

	// 4. Two-qubit gates need distinct targets
	if r.arity == 2 && qubits[0] == qubits[1] {
		return fmt.Errorf("gates: %q targets qubit %d twice: %w", cname, qubits[0], ErrQubitRange)
	}

	// 5. Mutate
	r.apply(t, qubits)

	return nil
}
