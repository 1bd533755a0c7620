// Command realm-extract pulls packet mappings and client parameters out
// of a single Flash client binary and prints them as a JSON or table
// document, the way the extractor's CLI is described.
package main

import (
	"fmt"
	"os"

	"github.com/oryxlabs/realmcore/cmd/realm-extract/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
