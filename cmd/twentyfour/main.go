// Command twentyfour solves and deals hands of the 24 arithmetic game.
//
// Usage:
//
//	twentyfour solve 2 5 8 2
//	twentyfour deal --count 5 --seed 42 --deck single
//	twentyfour check 2 5 8 2 "(2*(5+8))-2"
//	twentyfour serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twentyfour",
	Short: "Solve and deal hands of the 24 game",
	Long: `twentyfour finds every way to combine four integers with + - * /
and parentheses so the result is exactly 24, deals random solvable hands,
checks player answers, and serves the same operations over HTTP.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
