package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
)

func coreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "core <partition>",
		Short:   "Print the (r,b)-core of a partition",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAction,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePartition(args[0])
			if err != nil {
				return err
			}
			core, err := abacus.Core(p, groupOrder, colourStep)
			if err != nil {
				return fmt.Errorf("core of %v: %w", p, err)
			}
			fmt.Println(core)
			return nil
		},
	}
}
