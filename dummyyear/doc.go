// Package dummyyear is a small set of sample solutions. It exercises every
// input and output kind and serves as the end-to-end test of the generator,
// the runner and the snapshot check.
package dummyyear

//go:generate go run github.com/evenfurther/aoc/cmd/aocgen
