// Package main provides the entry point for the stig CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/stig-config/cmd/stig/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrKeyAbsent) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
