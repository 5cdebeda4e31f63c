package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
)

func quotientCmd() *cobra.Command {
	var classicalLabels bool
	cmd := &cobra.Command{
		Use:     "quotient <partition>",
		Short:   "Print the (r,b)-quotient tuple of a partition",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAction,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePartition(args[0])
			if err != nil {
				return err
			}
			tuple, err := abacus.Quotient(p, groupOrder, colourStep, classicalLabels)
			if err != nil {
				return fmt.Errorf("quotient of %v: %w", p, err)
			}
			fmt.Println(formatTuple(tuple))
			return nil
		},
	}
	cmd.Flags().BoolVar(&classicalLabels, "classical-labels", false,
		"order components as the classical r-quotient (b = r-1 only)")
	return cmd
}
