package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var colorMode string

var rootCmd = &cobra.Command{
	Use:   "imp",
	Short: "imp - parser and formatter for a minimal while-language",
	Long: `imp parses and pretty-prints programs of a minimal imperative
language: integer and boolean expressions, assignment, if/else,
while loops and braced sequences.

Source files conventionally use the .imp extension.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	_ = godotenv.Load()
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupColor()
	}
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", cfg.Color, "colorize output: auto, always or never")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", paint(failStyle, "error:"), err)
}
