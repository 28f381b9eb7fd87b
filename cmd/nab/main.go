package main

import (
	"os"

	"github.com/awaller/nab/cmd/nab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
