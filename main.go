package main

import "gdkp-ledger/cmd"

func main() {
	cmd.Execute()
}
