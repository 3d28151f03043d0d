package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvantor/cliffgo/sampling"
)

// NewOrderCommand creates the order command: print the symplectic and
// Clifford group orders for a qubit count.
func NewOrderCommand() *cobra.Command {
	var qubits int

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print |Sp(2n,2)| and the Clifford group order for n qubits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			symp, err := sampling.GroupOrder(qubits)
			if err != nil {
				return err
			}
			full, err := sampling.PhaseSpaceOrder(qubits)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "symplectic |Sp(%d,2)| = %s\n", 2*qubits, symp.String())
			fmt.Fprintf(cmd.OutOrStdout(), "clifford   |C_%d|     = %s\n", qubits, full.String())

			return nil
		},
	}

	cmd.Flags().IntVarP(&qubits, "qubits", "n", 1, "number of qubits")

	return cmd
}
