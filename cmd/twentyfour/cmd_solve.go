package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/solver"
)

var (
	solveJSONOutput bool
	solveWorkers    int
)

var solveCmd = &cobra.Command{
	Use:   "solve N N N N",
	Short: "Print every solution for a hand of four integers",
	Long: `Finds all distinct expressions over the four given integers that
evaluate to exactly 24. An empty result means the hand has no solution.

Examples:
  twentyfour solve 2 5 8 2
  twentyfour solve --json 1 7 8 8`,
	Args: cobra.ExactArgs(4),
	RunE: runSolveCommand,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSONOutput, "json", false,
		"Output as JSON for scripting")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0,
		"Parallel search width (0 = serial)")
	rootCmd.AddCommand(solveCmd)
}

func parseHandArgs(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, a)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func runSolveCommand(cmd *cobra.Command, args []string) error {
	numbers, err := parseHandArgs(args)
	if err != nil {
		return err
	}
	s := solver.NewExhaustiveSolver()
	s.Workers = solveWorkers
	sols, st, err := s.Solve(context.Background(), numbers)
	if err != nil {
		return err
	}
	if solveJSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"numbers":   numbers,
			"solutions": sols,
			"count":     len(sols),
			"trees":     st.Trees,
		})
	}
	fmt.Printf("NUMBERS: %v\n", numbers)
	fmt.Printf("SOLUTIONS: %d\n", len(sols))
	for i, sol := range sols {
		fmt.Printf("%d: %s\n", i+1, sol)
	}
	return nil
}
