package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kvantor/cliffgo/clifford"
	"github.com/kvantor/cliffgo/sampling"
)

// NewSampleCommand creates the sample command: draw a uniform random
// Clifford element and print it.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		qubits int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a uniform random Clifford element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			elem, err := sampling.Random(qubits, sampling.WithSeed(seed))
			if err != nil {
				return err
			}

			return printElement(cmd, rootOpts, elem)
		},
	}

	cmd.Flags().IntVarP(&qubits, "qubits", "n", 1, "number of qubits")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed (same seed, same element)")

	return cmd
}

// printElement renders an element as YAML dict or plain label lines.
func printElement(cmd *cobra.Command, rootOpts *RootOptions, elem *clifford.Element) error {
	if rootOpts.YAML {
		out, err := yaml.Marshal(elem.ToDict())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))

		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "destabilizer: %v\n", elem.DestabilizerLabels())
	fmt.Fprintf(cmd.OutOrStdout(), "stabilizer:   %v\n", elem.StabilizerLabels())

	return nil
}
