package scanner

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evenfurther/aoc/internal/adapter"
)

// DefaultOutput is the name of the generated registration file.
const DefaultOutput = "aoc_register.go"

// Discovery is one annotated solution found in source.
type Discovery struct {
	adapter.Annotation

	// File is the base name of the declaring file.
	File string `json:"file"`
	Line int    `json:"line"`

	// Func is the name of the annotated function.
	Func string `json:"func"`

	Input  adapter.InputKind  `json:"input"`
	Output adapter.OutputKind `json:"output"`
}

// Pos returns "file:line" for messages.
func (d Discovery) Pos() string {
	return fmt.Sprintf("%s:%d", d.File, d.Line)
}

// EntryPoint returns the generated variable name of the discovery.
func (d Discovery) EntryPoint() string {
	return d.Annotation.EntryPointName()
}

// Package is the result of scanning one directory.
type Package struct {
	Name        string
	Dir         string
	Discoveries []Discovery
}

// Scanner discovers annotated functions.
type Scanner struct {
	logger  *slog.Logger
	exclude map[string]bool
}

// New returns a Scanner that skips the files named in exclude (base names),
// typically the generated output itself. A nil logger uses slog.Default().
func New(logger *slog.Logger, exclude ...string) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[filepath.Base(name)] = true
	}
	return &Scanner{logger: logger, exclude: ex}
}

// ScanDir scans the non-test Go files of dir in file name order.
func (s *Scanner) ScanDir(dir string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read package dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || s.exclude[name] {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	pkg := &Package{Dir: dir}
	fset := token.NewFileSet()
	for _, name := range files {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		pkgName, found, err := s.scan(fset, name, src)
		if err != nil {
			return nil, err
		}
		if pkg.Name == "" {
			pkg.Name = pkgName
		} else if pkgName != pkg.Name {
			return nil, fmt.Errorf("%s: package %s, expected %s", name, pkgName, pkg.Name)
		}
		pkg.Discoveries = append(pkg.Discoveries, found...)
	}
	if pkg.Name == "" {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	if err := checkDuplicates(pkg.Discoveries); err != nil {
		return nil, err
	}
	s.logger.Debug("scanned package", "dir", dir, "package", pkg.Name, "files", len(files), "solutions", len(pkg.Discoveries))
	return pkg, nil
}

// ScanFile scans a single source file. filename is used in positions only.
func (s *Scanner) ScanFile(filename string, src []byte) ([]Discovery, error) {
	_, found, err := s.scan(token.NewFileSet(), filename, src)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicates(found); err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Scanner) scan(fset *token.FileSet, filename string, src []byte) (string, []Discovery, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	var found []Discovery
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			if !strings.HasPrefix(c.Text, Prefix) {
				continue
			}
			pos := fmt.Sprintf("%s:%d", filepath.Base(filename), fset.Position(c.Pos()).Line)

			ann, ok, err := ParseMarker(c.Text)
			if err != nil {
				return "", nil, withPos(err, pos)
			}
			if !ok {
				s.logger.Warn("skipping malformed aoc directive", "pos", pos, "text", c.Text)
				continue
			}

			d, err := discover(ann, fd, filepath.Base(filename), fset.Position(c.Pos()).Line)
			if err != nil {
				return "", nil, withPos(err, pos)
			}
			if d.Separator != "" && (d.Input == adapter.InputLines || d.Input == adapter.InputText || d.Input == adapter.InputBytes) {
				s.logger.Debug("separator has no effect for this input kind", "pos", pos, "func", d.Func, "input", d.Input)
			}
			found = append(found, d)
		}
	}
	return f.Name.Name, found, nil
}

func discover(ann adapter.Annotation, fd *ast.FuncDecl, file string, line int) (Discovery, error) {
	d := Discovery{Annotation: ann, File: file, Line: line, Func: fd.Name.Name}
	if err := ann.Validate(); err != nil {
		return d, err
	}

	fail := func(format string, args ...any) error {
		return &adapter.GenerationError{Annotation: ann.String(), Message: fmt.Sprintf(format, args...)}
	}
	if fd.Recv != nil {
		return d, fail("%s is a method; annotate a package-level function", fd.Name.Name)
	}
	if fd.Type.TypeParams != nil && len(fd.Type.TypeParams.List) > 0 {
		return d, fail("%s is generic", fd.Name.Name)
	}

	var err error
	if d.Input, err = classifyInput(fd.Type.Params); err != nil {
		return d, fail("%s: %v", fd.Name.Name, err)
	}
	if d.Output, err = classifyOutput(fd.Type.Results); err != nil {
		return d, fail("%s: %v", fd.Name.Name, err)
	}
	if d.Output == adapter.OutputUnit {
		return d, fail("%s: a puzzle entry must produce a value", fd.Name.Name)
	}
	if d.Input == adapter.InputByteSegments && len(d.Separator) > 1 {
		return d, fail("byte segments need a single-byte separator, got %q", d.Separator)
	}
	return d, nil
}

// checkDuplicates rejects two discoveries with the same entry point, which
// also catches a second main implementation for a (day, part).
func checkDuplicates(ds []Discovery) error {
	seen := make(map[string]Discovery, len(ds))
	for _, d := range ds {
		name := d.EntryPoint()
		if first, dup := seen[name]; dup {
			msg := fmt.Sprintf("duplicate entry point %s (first declared at %s)", name, first.Pos())
			if d.Variant == "" {
				msg = fmt.Sprintf("day %d part %d already has a main implementation at %s; name this one with a variant", d.Day, d.Part, first.Pos())
			}
			return &adapter.GenerationError{Annotation: d.Annotation.String(), Pos: d.Pos(), Message: msg}
		}
		seen[name] = d
	}
	return nil
}

func withPos(err error, pos string) error {
	var genErr *adapter.GenerationError
	if errors.As(err, &genErr) && genErr.Pos == "" {
		genErr.Pos = pos
	}
	return err
}
