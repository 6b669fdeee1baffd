package adapter

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// Annotation is the parsed form of an aoc marker.
type Annotation struct {
	Day  int `json:"day"`
	Part int `json:"part"`

	// Variant names an alternate implementation. Empty for the main one.
	Variant string `json:"variant,omitempty"`

	// Separator splits single-line input into tokens. Empty means
	// line-based splitting.
	Separator string `json:"separator,omitempty"`
}

// String renders the annotation in marker syntax.
func (a Annotation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "day%d, part%d", a.Day, a.Part)
	if a.Separator != "" {
		b.WriteString(", separator=")
		b.WriteString(strconv.Quote(a.Separator))
	}
	if a.Variant != "" {
		b.WriteString(", ")
		b.WriteString(a.Variant)
	}
	return b.String()
}

// EntryPointName returns the generated identifier of the annotated entry.
func (a Annotation) EntryPointName() string {
	return EntryPointName(a.Day, a.Part, a.Variant)
}

// EntryPointName derives an entry point identifier from (day, part, variant).
// The main implementation uses "none" in place of a variant name, which is
// why "none" is not a valid variant.
func EntryPointName(day, part int, variant string) string {
	if variant == "" {
		variant = "none"
	}
	return fmt.Sprintf("runner_%d_%d_%s", day, part, variant)
}

// schema holds the compiled annotation definition. cue values are not safe
// for concurrent use, so every access goes through mu.
var schema struct {
	mu   sync.Mutex
	ctx  *cue.Context
	def  cue.Value
	err  error
	once sync.Once
}

func annotationSchema() (*cue.Context, cue.Value, error) {
	schema.once.Do(func() {
		schema.ctx = cuecontext.New()
		v := schema.ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			schema.err = fmt.Errorf("compile annotation schema: %w", err)
			return
		}
		schema.def = v.LookupPath(cue.ParsePath("#Annotation"))
		if err := schema.def.Err(); err != nil {
			schema.err = fmt.Errorf("lookup #Annotation: %w", err)
		}
	})
	return schema.ctx, schema.def, schema.err
}

// Validate checks day and part ranges, the variant identifier and the
// separator against the annotation schema.
func (a Annotation) Validate() error {
	schema.mu.Lock()
	defer schema.mu.Unlock()

	ctx, def, err := annotationSchema()
	if err != nil {
		return err
	}
	unified := def.Unify(ctx.Encode(a))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &GenerationError{Annotation: a.String(), Message: cueMessage(err)}
	}
	return nil
}

// cueMessage keeps the first error of a cue error list.
func cueMessage(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	return errs[0].Error()
}
