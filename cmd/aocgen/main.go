// Command aocgen writes the registration file of a package of annotated
// Advent of Code solutions. See package aoc.
package main

import (
	"os"

	"github.com/evenfurther/aoc/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewGenerateCommand(), os.Args[1:]))
}
