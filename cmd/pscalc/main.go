package main

import (
	"os"

	"github.com/pscalc/pscalc/cli"
)

func main() {
	os.Exit(cli.Run())
}
