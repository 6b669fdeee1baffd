package adapter

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/evenfurther/aoc/internal/input"
	"github.com/evenfurther/aoc/internal/registry"
)

// Binding ties an annotated function to its declared input and output kinds.
type Binding struct {
	Annotation

	Input  InputKind
	Output OutputKind

	// Func is the solution function.
	Func any
}

// acquirer loads the call arguments of a solution.
type acquirer func(l *input.Loader) ([]reflect.Value, error)

// normalizer turns the results of a solution into an answer.
type normalizer func(out []reflect.Value) (string, error)

// Synthesize checks the binding against its function and returns the entry
// point that loads input through l, calls the function and normalizes the
// result. All checks happen here, never when the entry point runs.
func (b Binding) Synthesize(l *input.Loader) (registry.EntryPoint, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.Func == nil {
		return nil, b.errorf("no function bound")
	}

	fn := reflect.ValueOf(b.Func)
	ft := fn.Type()
	if ft.Kind() != reflect.Func {
		return nil, b.errorf("bound value is a %s, not a function", ft)
	}
	if ft.IsVariadic() {
		return nil, b.errorf("variadic function %s is not supported", ft)
	}

	acquire, err := b.acquirer(ft)
	if err != nil {
		return nil, err
	}
	normalize, err := b.normalizer(ft)
	if err != nil {
		return nil, err
	}

	return func() (string, error) {
		args, err := acquire(l)
		if err != nil {
			return "", err
		}
		return normalize(fn.Call(args))
	}, nil
}

func (b Binding) acquirer(ft reflect.Type) (acquirer, error) {
	if !b.Input.valid() {
		return nil, b.errorf("unknown input kind %d", int(b.Input))
	}
	if b.Input == InputNone {
		if ft.NumIn() != 0 {
			return nil, b.errorf("input kind none requires a function without parameters, got %s", ft)
		}
		return func(*input.Loader) ([]reflect.Value, error) { return nil, nil }, nil
	}
	if ft.NumIn() != 1 {
		return nil, b.errorf("input kind %s requires exactly one parameter, got %s", b.Input, ft)
	}

	param := ft.In(0)
	day := b.Day
	mismatch := func() error {
		return b.errorf("input kind %s does not accept parameter type %s", b.Input, param)
	}

	kind := b.Input
	if kind == InputParsed {
		kind = rawKind(param)
	}

	switch kind {
	case InputByteSegments:
		if param.Kind() != reflect.Slice || !byteSegmentsType.ConvertibleTo(param) {
			return nil, mismatch()
		}
		sep := input.DefaultByteSeparator
		if b.Separator != "" {
			if len(b.Separator) != 1 {
				return nil, b.errorf("byte segments need a single-byte separator, got %q", b.Separator)
			}
			sep = b.Separator[0]
		}
		return func(l *input.Loader) ([]reflect.Value, error) {
			raw, err := l.Bytes(day)
			if err != nil {
				return nil, err
			}
			segs := input.SplitBytes(raw, sep)
			return []reflect.Value{reflect.ValueOf(segs).Convert(param)}, nil
		}, nil

	case InputLines:
		if param.Kind() != reflect.Slice || !linesType.ConvertibleTo(param) {
			return nil, mismatch()
		}
		return func(l *input.Loader) ([]reflect.Value, error) {
			text, err := l.Text(day)
			if err != nil {
				return nil, err
			}
			lines := input.Lines(text)
			if lines == nil {
				lines = []string{}
			}
			return []reflect.Value{reflect.ValueOf(lines).Convert(param)}, nil
		}, nil

	case InputText:
		if param.Kind() != reflect.String {
			return nil, mismatch()
		}
		return func(l *input.Loader) ([]reflect.Value, error) {
			text, err := l.Text(day)
			if err != nil {
				return nil, err
			}
			return []reflect.Value{reflect.ValueOf(text).Convert(param)}, nil
		}, nil

	case InputBytes:
		if param.Kind() != reflect.Slice || !bytesType.ConvertibleTo(param) {
			return nil, mismatch()
		}
		return func(l *input.Loader) ([]reflect.Value, error) {
			raw, err := l.Bytes(day)
			if err != nil {
				return nil, err
			}
			return []reflect.Value{reflect.ValueOf(raw).Convert(param)}, nil
		}, nil

	default: // InputParsed
		if param.Kind() != reflect.Slice {
			return nil, mismatch()
		}
		elem := param.Elem()
		parse, err := parserFor(elem)
		if err != nil {
			return nil, b.errorf("%v", err)
		}
		sep := b.Separator
		return func(l *input.Loader) ([]reflect.Value, error) {
			text, err := l.Text(day)
			if err != nil {
				return nil, err
			}
			values, err := input.ParseSequence[reflect.Value](text, sep, parse)
			if err != nil {
				var parseErr *input.ParseError
				if errors.As(err, &parseErr) {
					parseErr.Type = elem.String()
				}
				return nil, err
			}
			out := reflect.MakeSlice(param, len(values), len(values))
			for i, v := range values {
				out.Index(i).Set(v)
			}
			return []reflect.Value{out}, nil
		}, nil
	}
}

// rawKind recognizes parsed slices that are byte views in disguise, such as
// a named type Grid [][]byte, which the scanner cannot resolve from source.
func rawKind(param reflect.Type) InputKind {
	switch {
	case param.Kind() != reflect.Slice:
		return InputParsed
	case byteSegmentsType.ConvertibleTo(param):
		return InputByteSegments
	case bytesType.ConvertibleTo(param):
		return InputBytes
	}
	return InputParsed
}

func (b Binding) normalizer(ft reflect.Type) (normalizer, error) {
	switch b.Output {
	case OutputValue:
		if ft.NumOut() != 1 || ft.Out(0) == errorType {
			return nil, b.errorf("output kind value requires a single non-error result, got %s", ft)
		}
		return func(out []reflect.Value) (string, error) {
			return render(out[0]), nil
		}, nil

	case OutputResult:
		if ft.NumOut() != 2 || ft.Out(1) != errorType {
			return nil, b.errorf("output kind result requires results (T, error), got %s", ft)
		}
		return func(out []reflect.Value) (string, error) {
			if !out[1].IsNil() {
				return "", out[1].Interface().(error)
			}
			return render(out[0]), nil
		}, nil

	case OutputOptional:
		if ft.NumOut() != 2 || ft.Out(1).Kind() != reflect.Bool {
			return nil, b.errorf("output kind optional requires results (T, bool), got %s", ft)
		}
		day, part, variant := b.Day, b.Part, b.Variant
		return func(out []reflect.Value) (string, error) {
			if !out[1].Bool() {
				return "", &NoOutputError{Day: day, Part: part, Variant: variant}
			}
			return render(out[0]), nil
		}, nil

	case OutputUnit:
		return nil, b.errorf("a puzzle entry must produce a value")

	default:
		return nil, b.errorf("unknown output kind %d", int(b.Output))
	}
}

func (b Binding) errorf(format string, args ...any) *GenerationError {
	return &GenerationError{Annotation: b.String(), Message: fmt.Sprintf(format, args...)}
}

func render(v reflect.Value) string {
	return fmt.Sprint(v.Interface())
}

// Register synthesizes every binding and adds it to reg in order.
// It stops at the first binding that cannot be synthesized or registered.
func Register(reg *registry.Registry, l *input.Loader, bindings ...Binding) error {
	for _, b := range bindings {
		run, err := b.Synthesize(l)
		if err != nil {
			return err
		}
		if err := reg.Register(b.Day, b.Part, b.Variant, run); err != nil {
			return fmt.Errorf("%s: %w", b.EntryPointName(), err)
		}
	}
	return nil
}
