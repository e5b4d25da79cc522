package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/twentyfour/internal/checker"
)

var checkCmd = &cobra.Command{
	Use:   "check N N N N EXPRESSION",
	Short: "Verify a player's expression against a hand",
	Long: `Checks that the expression uses each of the four given integers
exactly once and evaluates to exactly 24.

Example:
  twentyfour check 2 5 8 2 "(2*(5+8))-2"`,
	Args: cobra.ExactArgs(5),
	RunE: runCheckCommand,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheckCommand(cmd *cobra.Command, args []string) error {
	numbers, err := parseHandArgs(args[:4])
	if err != nil {
		return err
	}
	var hand [4]int
	copy(hand[:], numbers)
	v, err := checker.New().Check(context.Background(), hand, args[4])
	if err != nil {
		return err
	}
	if v.OK {
		fmt.Printf("correct: %s = %s\n", args[4], v.Value)
		return nil
	}
	if v.Value != "" {
		fmt.Printf("wrong: %s = %s\n", args[4], v.Value)
	} else {
		fmt.Printf("wrong: %s\n", v.Reason)
	}
	return nil
}
