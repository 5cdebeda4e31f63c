package commands

import (
	"github.com/spf13/cobra"
)

var (
	groupOrder int // -r, the cyclic group order / wire count
	colourStep int // -b, the colour step; -1 means r-1
)

func Execute() error {
	root := &cobra.Command{
		Use:           "suanpan",
		Short:         "Generalized (r,b)-core and quotient decompositions of partitions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().IntVarP(&groupOrder, "group-order", "r", 0, "cyclic group order (wire count)")
	root.PersistentFlags().IntVarP(&colourStep, "colour-step", "b", -1, "colour step of the action; -1 means r-1")

	root.AddCommand(
		coreCmd(), quotientCmd(), chargesCmd(), abacusCmd(), coloursCmd(),
		buildCmd(), verifyCmd(), drawCmd(),
	)
	return root.Execute()
}

// requireAction validates the persistent -r flag for commands that need one.
func requireAction(cmd *cobra.Command, args []string) error {
	if groupOrder < 1 {
		return errMissingGroupOrder
	}
	return nil
}
