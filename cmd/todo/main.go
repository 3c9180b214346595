package main

import (
	"os"

	"github.com/idilsaglam/todo/internal/cli"
)

func main() {
	os.Exit(cli.MainWithInput(os.Stdin, os.Args[1:], os.Stdout, os.Stderr, cli.Environ()))
}
