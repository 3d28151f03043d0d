package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kvantor/cliffgo/clifford"
	"github.com/kvantor/cliffgo/gates"
)

// CircuitFile is the YAML schema for an imported circuit: a qubit count
// and an ordered gate list (first gate applied first).
type CircuitFile struct {
	Qubits int          `yaml:"qubits"`
	Gates  []gates.Gate `yaml:"gates"`
}

// NewApplyCommand creates the apply command: fold a YAML circuit file into
// a Clifford element and print its dict.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Fold a YAML gate sequence into a Clifford element",
		Long: `Read a circuit description and print the resulting element.

The file format ("-" reads stdin):

  qubits: 2
  gates:
    - {name: h, qubits: [0]}
    - {name: cx, qubits: [0, 1]}

Gates outside the Clifford generator set are rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				raw []byte
				err error
			)
			if file == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(file)
			}
			if err != nil {
				return err
			}

			var circ CircuitFile
			if err = yaml.Unmarshal(raw, &circ); err != nil {
				return fmt.Errorf("parsing circuit: %w", err)
			}

			elem, err := clifford.FromGates(circ.Qubits, circ.Gates)
			if err != nil {
				return err
			}

			return printElement(cmd, rootOpts, elem)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "circuit YAML file (\"-\" for stdin)")

	return cmd
}
