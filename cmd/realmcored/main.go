// Command realmcored runs the connection listener, admin API, metrics,
// and tracing for one build's wire protocol.
package main

import (
	"fmt"
	"os"

	"github.com/oryxlabs/realmcore/cmd/realmcored/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
