// deskctl is a command-line companion for the helpdesk backend: it inspects
// terms documents and the own profile, and lists or exports agents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
