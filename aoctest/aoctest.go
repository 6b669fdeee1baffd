// Package aoctest holds test helpers for packages of solutions. It is kept
// apart from package aoc so that puzzle binaries do not link the testing
// package.
package aoctest

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/evenfurther/aoc"
	"github.com/evenfurther/aoc/internal/registry"
	"github.com/evenfurther/aoc/internal/runner"
)

// AssertReport runs every solution added by register (main entries only when
// mainOnly is set) and compares the report against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertReport(t *testing.T, name string, register aoc.RegisterFunc, loader *aoc.Loader, mainOnly bool) {
	t.Helper()

	reg := registry.New()
	if err := register(reg, loader); err != nil {
		t.Fatalf("register: %v", err)
	}
	report, err := runner.New(reg, runner.Options{}).
		Execute(context.Background(), runner.Filter{IncludeVariants: !mainOnly})
	if err != nil {
		t.Fatalf("execute report: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(report.String()))
}
