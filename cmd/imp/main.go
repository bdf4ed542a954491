package main

import (
	"os"

	"implang/cmd/imp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
