// This program provides a command line client for the ledger service.
package main

import "github.com/powledger/powledger/app/tooling/ledgercli/cmd"

func main() {
	cmd.Execute()
}
