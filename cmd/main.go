package main

import (
	"os"

	"andromeda-ads/internal/cli"
)

// main runs the andromeda command. "andromeda serve" starts the API server;
// the other subcommands drive a local session against it.
func main() {
	os.Exit(cli.Execute())
}
