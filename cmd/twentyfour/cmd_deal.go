package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/solver"
)

var (
	dealCount      int
	dealSeed       int64
	dealDeck       string
	dealJSONOutput bool
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal random hands that have at least one solution",
	Long: `Draws random four-card hands and keeps only the ones with at
least one solution, until the requested count is reached.

Examples:
  twentyfour deal
  twentyfour deal --count 5 --seed 42
  twentyfour deal --deck double`,
	RunE: runDealCommand,
}

func init() {
	dealCmd.Flags().IntVar(&dealCount, "count", 1, "Number of solvable hands to deal")
	dealCmd.Flags().Int64Var(&dealSeed, "seed", 0, "RNG seed (0 = time-based)")
	dealCmd.Flags().StringVar(&dealDeck, "deck", "single", "Card range: single (1-9) or double (1-24)")
	dealCmd.Flags().BoolVar(&dealJSONOutput, "json", false, "Output as JSON for scripting")
	rootCmd.AddCommand(dealCmd)
}

func parseDeckFlag(s string) domain.Deck {
	if s == "double" {
		return domain.DoubleDigit
	}
	return domain.SingleDigit
}

func runDealCommand(cmd *cobra.Command, args []string) error {
	seed := dealSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dealer := generator.NewSeededDealer(seed, parseDeckFlag(dealDeck))
	gen := generator.NewValidGameGenerator(solver.NewExhaustiveSolver())
	games, _, err := gen.GenerateValid(context.Background(), dealCount, dealer)
	if err != nil {
		return err
	}
	if dealJSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(games)
	}
	for n, g := range games {
		fmt.Printf("Game-%d NUMBERS: %v\n", n+1, g.Numbers)
		fmt.Printf("Game-%d SOLUTIONS: %d\n", n+1, len(g.Solutions))
		for i, sol := range g.Solutions {
			fmt.Printf("%d: %s\n", i+1, sol)
		}
		fmt.Println()
	}
	return nil
}
