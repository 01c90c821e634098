package main

import (
	"fmt"
	"os"

	"github.com/harrison/cairn/internal/cmd"
)

// Version is the current version of the cairn application
const Version = "1.0.0"

func main() {
	cmd.Version = Version
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
