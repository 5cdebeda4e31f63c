package commands

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"suanpan/internal/verify"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func verifyCmd() *cobra.Command {
	var (
		maxR     int
		maxSize  int
		jobs     int
		noColor  bool
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively verify the engine's bijections over small partitions",
		Long:  "Checks every round-trip and invariant of the (r,b) decomposition for all\npartitions of size below --max-size and all coprime actions with r below --max-r.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			var s *spinner.Spinner
			if progress {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				s.Suffix = fmt.Sprintf(" verifying actions up to r=%d, partitions up to size %d", maxR-1, maxSize-1)
				s.Start()
			}

			rep, err := verify.Run(cmd.Context(), verify.Options{
				MaxR:    maxR,
				MaxSize: maxSize,
				Jobs:    jobs,
			})
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			fmt.Printf("%d actions, %d checks\n", rep.Actions, rep.Checked)
			if !rep.OK() {
				for _, f := range rep.Failures {
					failColor.Printf("FAIL %s\n", f)
				}
				return fmt.Errorf("%d properties failed", len(rep.Failures))
			}
			passColor.Println("PASS all round-trips and invariants hold")
			return nil
		},
	}
	cmd.Flags().IntVar(&maxR, "max-r", 8, "check all r below this bound")
	cmd.Flags().IntVar(&maxSize, "max-size", 12, "check all partition sizes below this bound")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "concurrent r values (0 = one goroutine per r)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress spinner")
	return cmd
}
