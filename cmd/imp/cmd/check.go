package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"implang/pkg/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [files]",
	Short: "Check that imp source files parse",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var failed int
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("%s %s: %v\n", paint(failStyle, "FAIL"), path, err)
			failed++
			continue
		}
		if !parses(string(data)) {
			fmt.Printf("%s %s\n", paint(failStyle, "FAIL"), path)
			failed++
			continue
		}
		fmt.Printf("%s %s\n", paint(okStyle, "OK"), path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func parses(src string) bool {
	if _, ok := parser.ParseCom(src); ok {
		return true
	}
	_, ok := parser.ParseExp(src)
	return ok
}
