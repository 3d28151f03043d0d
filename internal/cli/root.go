// Package cli wires the cliffgo library into a cobra command tree:
// order, sample, decompose, and apply.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	YAML bool // emit YAML dicts instead of plain label lines
}

// NewRootCommand creates the root command for the cliffgo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cliffgo",
		Short: "Clifford group tableau toolkit",
		Long: `cliffgo manipulates N-qubit Clifford group elements as GF(2)
symplectic tableaus: group orders, uniform random sampling, canonical
index decomposition, and circuit folding.`,
	}

	cmd.PersistentFlags().BoolVar(&opts.YAML, "yaml", false, "emit YAML dicts instead of label lines")

	cmd.AddCommand(NewOrderCommand())
	cmd.AddCommand(NewSampleCommand(opts))
	cmd.AddCommand(NewDecomposeCommand())
	cmd.AddCommand(NewApplyCommand(opts))

	return cmd
}
