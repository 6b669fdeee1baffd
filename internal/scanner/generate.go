package scanner

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// FacadeImport is the package the generated file imports.
const FacadeImport = "github.com/evenfurther/aoc"

// Header marks generated files, following the convention recognized by go
// tooling.
const Header = "// Code generated by aocgen; DO NOT EDIT."

var registerTmpl = template.Must(template.New("register").Parse(`{{.Header}}

package {{.Pkg.Name}}

import "{{.Import}}"

var (
{{- range .Pkg.Discoveries}}
	// {{.Pos}}
	{{.EntryPoint}} = aoc.Binding{
		Annotation: aoc.Annotation{Day: {{.Day}}, Part: {{.Part}}
			{{- if .Variant}}, Variant: {{printf "%q" .Variant}}{{end}}
			{{- if .Separator}}, Separator: {{printf "%q" .Separator}}{{end}}},
		Input:  aoc.{{.Input.Ident}},
		Output: aoc.{{.Output.Ident}},
		Func:   {{.Func}},
	}
{{- end}}
)

// Register adds the annotated solutions of this package to reg, in source
// order.
func Register(reg *aoc.Registry, loader *aoc.Loader) error {
	return aoc.RegisterAll(reg, loader,
{{- range .Pkg.Discoveries}}
		{{.EntryPoint}},
{{- end}}
	)
}
`))

// Generate renders the registration file for pkg. The output is gofmt'ed and
// depends only on the discoveries, so unchanged sources give identical bytes.
func Generate(pkg *Package) ([]byte, error) {
	var buf bytes.Buffer
	err := registerTmpl.Execute(&buf, struct {
		Header string
		Import string
		Pkg    *Package
	}{Header, FacadeImport, pkg})
	if err != nil {
		return nil, fmt.Errorf("render registration file: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format registration file: %w", err)
	}
	return src, nil
}

// WriteFile generates the registration file of pkg into path. It reports
// whether the file changed.
func WriteFile(pkg *Package, path string) (bool, error) {
	src, err := Generate(pkg)
	if err != nil {
		return false, err
	}
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, src) {
		return false, nil
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// Stale reports whether the file at path differs from what Generate would
// produce for pkg. A missing file is stale.
func Stale(pkg *Package, path string) (bool, error) {
	src, err := Generate(pkg)
	if err != nil {
		return false, err
	}
	old, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return !bytes.Equal(old, src), nil
}
