// Command secadvisor is a small command line client for the Security Advisor
// findings and notifications APIs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
