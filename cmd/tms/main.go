package main

import (
	"os"

	"github.com/msto63/tms/cmd/tms/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
