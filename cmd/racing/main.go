// Command racing runs the car-racing game.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/racing/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
