package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"implang/pkg/parser"
	"implang/pkg/printer"
)

var (
	fmtWrite bool
	fmtList  bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files]",
	Short: "Format imp source files canonically",
	Long: `Reformat each file into the printer's canonical layout: minimal
parentheses, two-space indentation and normalized spacing.

Without flags the formatted source is written to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", cfg.Fmt.Write, "write result back to the file")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", cfg.Fmt.List, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", cfg.Fmt.Diff, "display a line diff instead of rewriting")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	var failed bool
	for _, path := range args {
		if err := fmtFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", paint(failStyle, "error:"), path, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("some files were not formatted")
	}
	return nil
}

func fmtFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	original := string(data)
	formatted, err := format(original)
	if err != nil {
		return err
	}

	switch {
	case fmtList:
		if formatted != original {
			fmt.Println(path)
		}
	case fmtDiff:
		if formatted != original {
			fmt.Printf("--- %s\n+++ %s (formatted)\n", path, path)
			printLineDiff(original, formatted)
		}
	case fmtWrite:
		if formatted == original {
			return nil
		}
		return os.WriteFile(path, []byte(formatted), 0644)
	default:
		fmt.Print(formatted)
	}
	return nil
}

// format renders src canonically. A file holds either one command or one
// bare expression.
func format(src string) (string, error) {
	if c, ok := parser.ParseCom(src); ok {
		return printer.Com(c) + "\n", nil
	}
	if e, ok := parser.ParseExp(src); ok {
		return printer.Exp(e) + "\n", nil
	}
	return "", fmt.Errorf("no parse")
}

func printLineDiff(a, b string) {
	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")
	n := len(aLines)
	if len(bLines) > n {
		n = len(bLines)
	}
	for i := 0; i < n; i++ {
		var aLine, bLine string
		if i < len(aLines) {
			aLine = aLines[i]
		}
		if i < len(bLines) {
			bLine = bLines[i]
		}
		if aLine == bLine {
			continue
		}
		if i < len(aLines) {
			fmt.Println(paint(delStyle, "-"+aLine))
		}
		if i < len(bLines) {
			fmt.Println(paint(addStyle, "+"+bLine))
		}
	}
}
