package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvantor/cliffgo/gates"
	"github.com/kvantor/cliffgo/sampling"
)

// NewDecomposeCommand creates the decompose command: print the canonical
// gate sequence for a 1- or 2-qubit group index.
func NewDecomposeCommand() *cobra.Command {
	var (
		qubits int
		index  int
	)

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Decompose a canonical 1-/2-qubit Clifford index into gates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				seq []gates.Gate
				err error
			)
			switch qubits {
			case 1:
				seq, err = sampling.Decompose1Q(index)
			case 2:
				seq, err = sampling.Decompose2Q(index)
			default:
				return fmt.Errorf("decompose supports 1 or 2 qubits, got %d", qubits)
			}
			if err != nil {
				return err
			}

			if len(seq) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "i 0")

				return nil
			}
			var g gates.Gate
			for _, g = range seq {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", g.Name, g.Qubits)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&qubits, "qubits", "n", 1, "subgroup: 1 or 2 qubits")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "canonical index (mod 24 or 11520)")

	return cmd
}
