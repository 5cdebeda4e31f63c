package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"suanpan/internal/abacus"
	"suanpan/internal/partition"
	"suanpan/internal/render"
)

func drawCmd() *cobra.Command {
	var (
		notation   string
		labelParts bool
		colourize  bool
		ferrers    bool
		frobenius  bool
		boundary   bool
		standalone bool
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "draw <partition>",
		Short: "Emit TikZ code for a partition diagram",
		Long:  "Emits TikZ commands drawing the Young diagram of a partition, optionally as a\nFerrers dot diagram or a Frobenius-coordinate hook diagram, with per-cell\n(r,b)-colour labels, or with its boundary path. Output goes to stdout unless -o\nis given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePartition(args[0])
			if err != nil {
				return err
			}
			not := render.Notation(notation)

			var body string
			if ferrers {
				body, err = render.Ferrers(p, not)
			} else if frobenius {
				arms, legs := p.Frobenius()
				body, err = render.Frobenius(arms, legs, render.DiagramOptions{
					Notation:   not,
					LabelParts: labelParts,
				})
			} else {
				body, err = render.Diagram(p, render.DiagramOptions{
					Notation:   not,
					LabelParts: labelParts,
				})
			}
			if err != nil {
				return err
			}

			if colourize {
				if groupOrder < 1 {
					return errMissingGroupOrder
				}
				labels, err := render.LabelDiagram(p, func(i, j int) string {
					return strconv.Itoa(abacus.Colour(i, j, groupOrder, colourStep))
				}, not)
				if err != nil {
					return err
				}
				body += labels
			}

			if boundary {
				edges, err := render.Boundary(partition.ZeroOneSequence(p), "blue", "orange", not)
				if err != nil {
					return err
				}
				body += edges
			}

			if standalone {
				body = render.Document(body)
			}
			if outPath != "" {
				return os.WriteFile(outPath, []byte(body), 0o644)
			}
			fmt.Println(body)
			return nil
		},
	}
	cmd.Flags().StringVar(&notation, "notation", string(render.English), "drawing convention: English, French, Russian, Cartesian")
	cmd.Flags().BoolVar(&labelParts, "labels", false, "annotate each part with its size")
	cmd.Flags().BoolVar(&colourize, "colour", false, "label each cell with its (r,b)-colour (needs -r)")
	cmd.Flags().BoolVar(&ferrers, "ferrers", false, "draw a Ferrers dot diagram instead of an outline")
	cmd.Flags().BoolVar(&frobenius, "frobenius", false, "draw the Frobenius-coordinate hook diagram instead of an outline")
	cmd.Flags().BoolVar(&boundary, "boundary", false, "draw the coloured boundary path")
	cmd.Flags().BoolVar(&standalone, "document", false, "wrap output in a standalone .tex document")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to a file instead of stdout")
	return cmd
}
