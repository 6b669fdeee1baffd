package scanner

import (
	"fmt"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/evenfurther/aoc/internal/adapter"
)

// Prefix starts every directive line.
const Prefix = "//aoc:"

var markerRx = regexp.MustCompile(`^day(\d+)\s*,\s*part(\d+)\s*(?:,(.*))?$`)

// ParseMarker parses one comment line. It reports ok=false for lines that are
// not directives or do not start with "day<N>, part<P>". The returned
// annotation is not range-checked; see adapter.Annotation.Validate.
func ParseMarker(line string) (ann adapter.Annotation, ok bool, err error) {
	body, found := strings.CutPrefix(line, Prefix)
	if !found {
		return ann, false, nil
	}
	body = strings.TrimSpace(body)
	m := markerRx.FindStringSubmatch(body)
	if m == nil {
		return ann, false, nil
	}

	fail := func(format string, args ...any) error {
		return &adapter.GenerationError{Annotation: body, Message: fmt.Sprintf(format, args...)}
	}

	if ann.Day, err = strconv.Atoi(m[1]); err != nil {
		return ann, true, fail("day %s is not a number", m[1])
	}
	if ann.Part, err = strconv.Atoi(m[2]); err != nil {
		return ann, true, fail("part %s is not a number", m[2])
	}
	if m[3] == "" && !strings.HasSuffix(body, ",") {
		return ann, true, nil
	}

	args, err := splitArgs(m[3])
	if err != nil {
		return ann, true, fail("%v", err)
	}
	sawSeparator := false
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return ann, true, fail("empty argument")
		}

		if key, value, isKeyword := strings.Cut(arg, "="); isKeyword {
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			if key != "separator" {
				return ann, true, fail("unknown keyword argument %q", key)
			}
			if sawSeparator {
				return ann, true, fail("separator given twice")
			}
			sep, err := strconv.Unquote(value)
			if err != nil || (strings.HasPrefix(value, "'") && utf8.RuneCountInString(sep) != 1) {
				return ann, true, fail("separator %s is not a Go rune or string literal", value)
			}
			if sep == "" {
				return ann, true, fail("separator must not be empty")
			}
			ann.Separator = sep
			sawSeparator = true
			continue
		}

		if !token.IsIdentifier(arg) {
			return ann, true, fail("%q is not an identifier", arg)
		}
		if ann.Variant != "" {
			return ann, true, fail("second variant name %q (already named %q)", arg, ann.Variant)
		}
		ann.Variant = arg
	}
	return ann, true, nil
}

// splitArgs splits a directive argument list on commas that are not inside
// a quoted literal.
func splitArgs(s string) ([]string, error) {
	var (
		args  []string
		start int
		quote byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0 && quote != '`' && c == '\\':
			i++
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == ',':
			args = append(args, s[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c literal", quote)
	}
	return append(args, s[start:]), nil
}
