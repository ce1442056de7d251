// bsparser converts raw bank statement exports into categorized ledger files.
package main

import (
	"os"

	"github.com/4rgc/bsparser/cmd/convert"
	"github.com/4rgc/bsparser/cmd/patterns"
	"github.com/4rgc/bsparser/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(patterns.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
