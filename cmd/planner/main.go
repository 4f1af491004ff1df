// Command planner is the command-line client of the trip planner API.
// It drives the same Resource Managers and Activity Overview a UI would, over
// HTTP, and prints their notifications to stderr.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
