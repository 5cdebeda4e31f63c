package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
)

func chargesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "charges <partition>",
		Short:   "Print the (r,b)-charge coordinates of a partition",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAction,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePartition(args[0])
			if err != nil {
				return err
			}
			charges, err := abacus.Charges(p, groupOrder, colourStep)
			if err != nil {
				return fmt.Errorf("charges of %v: %w", p, err)
			}
			out := make([]string, len(charges))
			for i, c := range charges {
				out[i] = strconv.Itoa(c)
			}
			fmt.Println(strings.Join(out, ","))
			return nil
		},
	}
}
