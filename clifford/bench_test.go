package clifford_test

import (
	"testing"

	"github.com/kvantor/cliffgo/clifford"
)

// benchmarkCompose measures full-size tableau multiplication on n qubits.
func benchmarkCompose(b *testing.B, n int) {
	a, err := clifford.Identity(n)
	if err != nil {
		b.Fatalf("Identity failed: %v", err)
	}
	for q := 0; q < n; q++ {
		if err = a.Apply("h", []int{q}); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
	o := a.Conjugate()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = a.Compose(o); err != nil {
			b.Fatalf("Compose failed: %v", err)
		}
	}
}

// BenchmarkCompose_4 measures composition on 4 qubits.
func BenchmarkCompose_4(b *testing.B) { benchmarkCompose(b, 4) }

// BenchmarkCompose_16 measures composition on 16 qubits.
func BenchmarkCompose_16(b *testing.B) { benchmarkCompose(b, 16) }

// BenchmarkToDict measures label rendering on 16 qubits.
func BenchmarkToDict(b *testing.B) {
	elem, err := clifford.Identity(16)
	if err != nil {
		b.Fatalf("Identity failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = elem.ToDict()
	}
}
