// Command dummyyear runs the sample solutions.
package main

import (
	"github.com/evenfurther/aoc"
	"github.com/evenfurther/aoc/dummyyear"
)

func main() {
	aoc.Main(dummyyear.Register)
}
