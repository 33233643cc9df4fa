package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/pos-ledger/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
