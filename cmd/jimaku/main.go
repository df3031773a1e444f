package main

import (
	"os"

	"github.com/soranowa/jimaku/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
