package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
)

func coloursCmd() *cobra.Command {
	var tableau bool
	cmd := &cobra.Command{
		Use:     "colours <partition>",
		Short:   "Print per-colour cell counts, or the full colour tableau",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAction,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePartition(args[0])
			if err != nil {
				return err
			}
			if tableau {
				for _, row := range abacus.ColourTableau(p, groupOrder, colourStep) {
					cells := make([]string, len(row))
					for j, c := range row {
						cells[j] = strconv.Itoa(c)
					}
					fmt.Println(strings.Join(cells, " "))
				}
				return nil
			}
			for colour, count := range abacus.ColourCount(p, groupOrder, colourStep) {
				fmt.Printf("colour %d: %d\n", colour, count)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tableau, "tableau", false, "print the coloured tableau instead of counts")
	return cmd
}
