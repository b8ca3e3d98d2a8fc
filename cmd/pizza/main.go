package main

import (
	"github.com/pizzeria/pizza/pkg/cli"
)

func main() {
	cli.Execute()
}
