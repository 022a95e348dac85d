package main

import (
	"github.com/noirbureau/swanhunt/internal/cli"
)

func main() {
	cli.Execute()
}
