package main

import (
	"os"

	"github.com/eolymp/go-htex/cmd/htex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
