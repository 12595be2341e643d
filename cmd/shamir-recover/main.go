// Command shamir-recover reconstructs secrets from share documents.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shamir-recover:", err)
		os.Exit(1)
	}
}
