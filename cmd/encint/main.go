package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var Version = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "encint"
	app.Version = Version
	app.Usage = "encode, decode and inspect compact integer streams"

	app.Commands = []cli.Command{
		cmdDump,
		cmdEncode,
		cmdLen,
	}

	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "encint:", err)
		os.Exit(1)
	}
}
