package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
)

func abacusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "abacus <partition>",
		Short:   "Print the (r,b)-abacus wires of a partition",
		Long:    "Prints one wire per line in the convention 1:north, 0:east. Each wire\ncontinues with infinitely many east symbols, which are not shown.",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAction,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePartition(args[0])
			if err != nil {
				return err
			}
			a, err := abacus.Build(p, groupOrder, colourStep)
			if err != nil {
				return fmt.Errorf("abacus of %v: %w", p, err)
			}
			for i, wire := range a {
				var sb strings.Builder
				for _, code := range wire {
					sb.WriteByte(byte('0' + code))
				}
				fmt.Printf("wire %d: %s\n", i, sb.String())
			}
			return nil
		},
	}
}
