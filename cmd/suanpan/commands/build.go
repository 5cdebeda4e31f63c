package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
)

func buildCmd() *cobra.Command {
	var coreArg, chargesArg, quotientArg string
	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Reconstruct a partition from core/charges and quotient data",
		Long:    "Reconstructs the unique partition with the given (r,b)-core (or charge\ncoordinates) and quotient tuple. Exactly one of --core and --charges must be set;\n--quotient may be omitted for a contentless reconstruction.",
		Args:    cobra.NoArgs,
		PreRunE: requireAction,
		RunE: func(cmd *cobra.Command, args []string) error {
			coreSet := cmd.Flags().Changed("core")
			chargesSet := cmd.Flags().Changed("charges")
			if coreSet == chargesSet {
				return errors.New("exactly one of --core and --charges is required")
			}

			tuple, err := parseQuotient(quotientArg)
			if err != nil {
				return err
			}

			if coreSet {
				core, err := parsePartition(coreArg)
				if err != nil {
					return err
				}
				p, err := abacus.FromCoreAndQuotient(core, tuple, groupOrder, colourStep)
				if err != nil {
					return fmt.Errorf("from core %v: %w", core, err)
				}
				fmt.Println(p)
				return nil
			}

			charges, err := parseCharges(chargesArg)
			if err != nil {
				return err
			}
			p, err := abacus.FromChargesAndQuotient(charges, tuple, groupOrder, colourStep)
			if err != nil {
				return fmt.Errorf("from charges %v: %w", charges, err)
			}
			fmt.Println(p)
			return nil
		},
	}
	cmd.Flags().StringVar(&coreArg, "core", "", "core partition, e.g. \"2,1\"")
	cmd.Flags().StringVar(&chargesArg, "charges", "", "charge coordinates, e.g. \"1,-1,0\"")
	cmd.Flags().StringVar(&quotientArg, "quotient", "", "quotient tuple, e.g. \"2,1;-;1\"")
	return cmd
}
