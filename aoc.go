// Package aoc runs Advent of Code solutions written as plain Go functions.
//
// A solutions package annotates its functions and lets aocgen write the
// registration file:
//
//	//go:generate go run github.com/evenfurther/aoc/cmd/aocgen
//
//	//aoc:day1, part1
//	func part1(input string) int { ... }
//
// and its binary hands the generated Register function to Main:
//
//	func main() { aoc.Main(year2015.Register) }
//
// Golden-file helpers for tests live in package aoctest.
//
// The types below are aliases of the internal packages so that generated
// code and hand-written registrations outside this module can name them.
package aoc

import (
	"context"
	"os"
	"path/filepath"

	"github.com/evenfurther/aoc/internal/adapter"
	"github.com/evenfurther/aoc/internal/cli"
	"github.com/evenfurther/aoc/internal/config"
	"github.com/evenfurther/aoc/internal/input"
	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/snapshot"
)

type (
	// Binding ties a solution function to its annotation and kinds.
	Binding = adapter.Binding

	// Annotation is the parsed form of an //aoc: directive.
	Annotation = adapter.Annotation

	InputKind  = adapter.InputKind
	OutputKind = adapter.OutputKind

	Registry = registry.Registry
	Loader   = input.Loader

	// LoaderConfig locates input files and holds the input override.
	LoaderConfig = input.Config

	// RegisterFunc is the signature of generated Register functions.
	RegisterFunc = cli.RegisterFunc
)

const (
	InputByteSegments = adapter.InputByteSegments
	InputLines        = adapter.InputLines
	InputText         = adapter.InputText
	InputBytes        = adapter.InputBytes
	InputParsed       = adapter.InputParsed
	InputNone         = adapter.InputNone

	OutputValue    = adapter.OutputValue
	OutputResult   = adapter.OutputResult
	OutputOptional = adapter.OutputOptional
	OutputUnit     = adapter.OutputUnit
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return registry.New()
}

// NewLoader returns an input loader; empty fields take their defaults.
func NewLoader(cfg LoaderConfig) *Loader {
	return input.NewLoader(cfg)
}

// RegisterAll synthesizes every binding and registers it, in order. It is
// called by generated registration files.
func RegisterAll(reg *Registry, loader *Loader, bindings ...Binding) error {
	return adapter.Register(reg, loader, bindings...)
}

// Main runs the command line of a puzzle binary and exits.
func Main(register RegisterFunc) {
	cmd := cli.NewRootCommand(cli.App{
		Name:     filepath.Base(os.Args[0]),
		Register: register,
	})
	os.Exit(cli.Execute(cmd, os.Args[1:]))
}

// Check runs every registered solution, main entries only when mainOnly is
// set, and compares the report with the reference file at expected. Input
// is read as configured by aoc.yaml in the working directory, if any.
// With RECORD_RESULTS set, the reference is rewritten and Check returns true.
func Check(register RegisterFunc, expected string, mainOnly bool) (bool, error) {
	cfg, err := config.Load(config.DefaultFile, false)
	if err != nil {
		return false, err
	}
	reg := registry.New()
	if err := register(reg, cfg.Loader("")); err != nil {
		return false, err
	}
	checker := snapshot.New(reg, snapshot.Options{Record: snapshot.Recording()})
	return checker.Check(context.Background(), expected, mainOnly)
}
