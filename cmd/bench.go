package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/varkel/sudoku/internal/generator"
	"github.com/varkel/sudoku/internal/rule"
)

var (
	benchPprof      bool
	benchDifficulty string
	benchSeed       int64
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Generate one puzzle per variant and report timings",
		RunE:  runBench,
	}

	benchCmd.Flags().BoolVarP(&benchPprof, "pprof", "p", false, "Write a CPU profile")
	benchCmd.Flags().StringVarP(&benchDifficulty, "difficulty", "d", "easy", "Difficulty tier: easy, medium, hard")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "Random seed (0 = time-seeded)")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchPprof {
		defer profile.Start().Stop()
	}

	tier, ok := generator.ParseDifficulty(benchDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", benchDifficulty)
	}

	cfg := generator.DefaultConfig(tier)
	cfg.Seed = benchSeed

	fmt.Printf("%-16s %8s %6s %s\n", "variant", "elapsed", "clues", "target")
	for _, id := range rule.Variants() {
		r, err := rule.New(id, rule.Options{})
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := generator.New(cfg, r).Generate()
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			fmt.Printf("%-16s %8s %6s %v\n", id, elapsed, "-", err)
			continue
		}

		met := "missed"
		if res.TargetMet {
			met = "met"
		}
		fmt.Printf("%-16s %8s %6d %s\n", id, elapsed, res.Clues, met)
	}
	return nil
}
