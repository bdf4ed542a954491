package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// cfg carries defaults read from an optional imp.toml in the working
// directory; flags override it.
var cfg = loadConfig()

type fileConfig struct {
	Color string `toml:"color"`
	Fmt   struct {
		Write bool `toml:"write"`
		List  bool `toml:"list"`
		Diff  bool `toml:"diff"`
	} `toml:"fmt"`
}

func loadConfig() fileConfig {
	conf := fileConfig{Color: "auto"}
	if _, err := os.Stat("imp.toml"); err != nil {
		return conf
	}
	if _, err := toml.DecodeFile("imp.toml", &conf); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring imp.toml: %v\n", err)
		return fileConfig{Color: "auto"}
	}
	if conf.Color == "" {
		conf.Color = "auto"
	}
	return conf
}
