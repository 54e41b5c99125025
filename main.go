// Package main provides the entry point for the aupdate CLI.
package main

import (
	"os"

	"github.com/caldera-labs/aupdate/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
