package sampling_test

import (
	"fmt"

	"github.com/kvantor/cliffgo/sampling"
)

// ExampleGroupOrder prints the symplectic group order for two qubits.
func ExampleGroupOrder() {
	size, err := sampling.GroupOrder(2)
	if err != nil {
		fmt.Println("order failed:", err)
		return
	}

	fmt.Println("|Sp(4,2)| =", size)
	// Output:
	// |Sp(4,2)| = 720
}

// ExampleRandom draws a reproducible 2-qubit element.
func ExampleRandom() {
	a, _ := sampling.Random(2, sampling.WithSeed(42))
	b, _ := sampling.Random(2, sampling.WithSeed(42))

	fmt.Println("reproducible:", a.Equal(b))
	fmt.Println("symplectic:  ", a.IsSymplectic())
	// Output:
	// reproducible: true
	// symplectic:   true
}

// ExampleDecompose1Q prints the canonical circuit of an index.
func ExampleDecompose1Q() {
	seq, err := sampling.Decompose1Q(23)
	if err != nil {
		fmt.Println("decompose failed:", err)
		return
	}

	for _, g := range seq {
		fmt.Println(g.Name, g.Qubits)
	}
	// Output:
	// h [0]
	// w [0]
	// y [0]
}
