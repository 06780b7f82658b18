package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rogpeppe/maskset/mask"
)

func (a *app) unionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union MASK MASK...",
		Short: "Print the indices selected by any mask",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			masks, err := parseMasks(args)
			if err != nil {
				return err
			}
			return a.print(cmd, "union", mask.UnionAll(masks...))
		},
	}
}

func (a *app) intersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect MASK MASK...",
		Short: "Print the indices selected by every mask",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			masks, err := parseMasks(args)
			if err != nil {
				return err
			}
			return a.print(cmd, "intersect", mask.IntersectionAll(masks...))
		},
	}
}

func (a *app) differenceCmd() *cobra.Command {
	var symmetric bool
	cmd := &cobra.Command{
		Use:   "difference MASK MASK",
		Short: "Print the indices selected by the first mask but not the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			masks, err := parseMasks(args)
			if err != nil {
				return err
			}
			if symmetric {
				return a.print(cmd, "symmetric-difference", mask.SymmetricDifference(masks[0], masks[1]))
			}
			return a.print(cmd, "difference", mask.Difference(masks[0], masks[1]))
		},
	}
	cmd.Flags().BoolVar(&symmetric, "symmetric", false, "print indices selected by exactly one mask")
	return cmd
}

func (a *app) complementCmd() *cobra.Command {
	var universe int
	cmd := &cobra.Command{
		Use:   "complement MASK",
		Short: "Print the indices of the universe not selected by the mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.universe(cmd, universe)
			if err != nil {
				return err
			}
			m, err := parseMask(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "complement", mask.Complement(m, n))
		},
	}
	cmd.Flags().IntVarP(&universe, "universe", "n", 0, "universe size")
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var (
		universe int
		ratio    float64
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Print a random training mask and its complementary test mask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.universe(cmd, universe)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ratio") {
				ratio = a.cfg.Ratio
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			train, test, err := mask.Split(n, ratio, rng)
			if err != nil {
				return err
			}
			if err := a.print(cmd, "train", train); err != nil {
				return err
			}
			return a.print(cmd, "test", test)
		},
	}
	cmd.Flags().IntVarP(&universe, "universe", "n", 0, "universe size")
	cmd.Flags().Float64Var(&ratio, "ratio", 0.8, "probability of placing an index in the training mask")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed; zero picks one at random")
	return cmd
}

// universe returns the universe size from the --universe flag,
// falling back to the configured default.
func (a *app) universe(cmd *cobra.Command, flagValue int) (int, error) {
	n := flagValue
	if !cmd.Flags().Changed("universe") {
		n = a.cfg.Universe
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid universe size %d", n)
	}
	return n, nil
}

func (a *app) print(cmd *cobra.Command, op string, m mask.Mask) error {
	a.logger.Debug("mask computed", zap.String("op", op), zap.Int("len", len(m)))
	_, err := fmt.Fprintln(cmd.OutOrStdout(), formatMask(m))
	return err
}
