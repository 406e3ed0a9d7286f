// Command rebar is the CLI entry point over the Rebar front end's
// environment façade: tokenize, parse, repl, serve, lsp, and version.
package main

import (
	"os"

	"github.com/rebar-lang/rebar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
