package gates_test

import (
	"testing"

	"github.com/kvantor/cliffgo/gates"
	"github.com/kvantor/cliffgo/tableau"
)

// benchmarkGate measures one column-wise gate update on n qubits.
func benchmarkGate(b *testing.B, n int, name string, qubits []int) {
	tab, err := tableau.NewIdentity(n)
	if err != nil {
		b.Fatalf("NewIdentity failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = gates.Apply(tab, name, qubits); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkApplyH_64 measures h on a 64-qubit tableau.
func BenchmarkApplyH_64(b *testing.B) { benchmarkGate(b, 64, "h", []int{0}) }

// BenchmarkApplyCX_64 measures cx on a 64-qubit tableau.
func BenchmarkApplyCX_64(b *testing.B) { benchmarkGate(b, 64, "cx", []int{0, 63}) }
