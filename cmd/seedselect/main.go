package main

import (
	"github.com/alecthomas/kong"

	basecmd "github.com/hupe1980/seedselect/cmd"
	"github.com/hupe1980/seedselect/internal/cli"
)

func main() {
	basecmd.Run(&cli.CLI{}, "seedselect", "Deterministic seed-based candidate selection",
		kong.Bind(cli.Stdio()),
	)
}
