package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgudrian/adventofcode/internal/cave"
)

func newDumpCmd(opts *options) *cobra.Command {
	var floor bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Run one variant and print the final cave",
		Long: `dump prints the cave after the run: '#' rock, 'o' sand, '+' inlet,
'~' where the last grain fell into the abyss. A run stopped by the drop
limit is printed as far as it got.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rocks, err := prepare(cmd, opts)
			if err != nil {
				return err
			}
			ctx, cancel := runContext(cmd.Context(), cfg)
			defer cancel()

			res, err := simulate(ctx, cfg, rocks, floor)
			if err != nil && !errors.Is(err, cave.ErrDropLimit) {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, res.Grid.String())
			fmt.Fprintf(out, "grains: %d\n", res.Grains)
			return err
		},
	}
	cmd.Flags().BoolVar(&floor, "floor", false, "lay a rock floor two rows below the lowest rock")
	return cmd
}
