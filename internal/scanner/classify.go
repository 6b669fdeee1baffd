package scanner

import (
	"fmt"
	"go/ast"
	"go/types"

	"github.com/evenfurther/aoc/internal/adapter"
)

// classifyInput maps the declared parameters of a solution to an input kind.
func classifyInput(params *ast.FieldList) (adapter.InputKind, error) {
	fields := expand(params)
	switch len(fields) {
	case 0:
		return adapter.InputNone, nil
	case 1:
	default:
		return 0, fmt.Errorf("a solution takes at most one parameter, got %d", len(fields))
	}

	expr := fields[0]
	if _, ok := expr.(*ast.Ellipsis); ok {
		return 0, fmt.Errorf("variadic parameter %s is not supported", types.ExprString(expr))
	}
	switch types.ExprString(expr) {
	case "[][]byte", "[][]uint8":
		return adapter.InputByteSegments, nil
	case "[]string":
		return adapter.InputLines, nil
	case "string":
		return adapter.InputText, nil
	case "[]byte", "[]uint8":
		return adapter.InputBytes, nil
	}
	switch t := expr.(type) {
	case *ast.ArrayType:
		if t.Len != nil {
			return 0, fmt.Errorf("array parameter %s is not supported, use a slice", types.ExprString(expr))
		}
	case *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType, *ast.StructType, *ast.StarExpr:
		return 0, fmt.Errorf("parameter type %s cannot hold puzzle input", types.ExprString(expr))
	}
	// Named types are checked against their underlying slice at startup.
	return adapter.InputParsed, nil
}

// classifyOutput maps the declared results of a solution to an output kind.
func classifyOutput(results *ast.FieldList) (adapter.OutputKind, error) {
	fields := expand(results)
	switch len(fields) {
	case 0:
		return adapter.OutputUnit, nil
	case 1:
		if types.ExprString(fields[0]) == "error" {
			return adapter.OutputUnit, nil
		}
		return adapter.OutputValue, nil
	case 2:
		switch types.ExprString(fields[1]) {
		case "error":
			return adapter.OutputResult, nil
		case "bool":
			return adapter.OutputOptional, nil
		}
		return 0, fmt.Errorf("second result must be error or bool, got %s", types.ExprString(fields[1]))
	default:
		return 0, fmt.Errorf("a solution returns at most two results, got %d", len(fields))
	}
}

// expand returns one type expression per declared name, so that
// "a, b string" counts as two.
func expand(fl *ast.FieldList) []ast.Expr {
	if fl == nil {
		return nil
	}
	var out []ast.Expr
	for _, f := range fl.List {
		n := len(f.Names)
		if n == 0 {
			n = 1
		}
		for range n {
			out = append(out, f.Type)
		}
	}
	return out
}
