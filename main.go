// Package main is the entry point of the registration service.
package main

import (
	"fmt"
	"os"

	"registration/src/app/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
