package main

import "github.com/pesaledger/go-ledger-core/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
