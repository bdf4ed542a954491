package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"implang/pkg/parser"
)

var parseFile string

var parseCmd = &cobra.Command{
	Use:   "parse [source]",
	Short: "Parse imp source and print the syntax tree",
	Long: `Parse a command or expression and print the resulting tree in its
debug form, with every operator fully parenthesized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "read source from a file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var src string
	switch {
	case parseFile != "":
		data, err := os.ReadFile(parseFile)
		if err != nil {
			return err
		}
		src = string(data)
	case len(args) == 1:
		src = args[0]
	default:
		return fmt.Errorf("need a source argument or -f file")
	}

	if c, ok := parser.ParseCom(src); ok {
		fmt.Println(c.String())
		return nil
	}
	if e, ok := parser.ParseExp(src); ok {
		fmt.Println(e.String())
		return nil
	}
	return fmt.Errorf("no parse")
}
