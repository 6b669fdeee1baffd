package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/evenfurther/aoc/internal/input"
)

// width measures terminal columns independently of the user's locale, so
// that reference reports compare equal on every machine.
var width = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Block is the outcome of one executed entry.
type Block struct {
	Day     int
	Part    int
	Variant string

	// Output is the rendered answer. It is empty when Err is set.
	Output string
	Err    error

	Elapsed time.Duration
}

// OK reports whether the entry produced an answer.
func (b Block) OK() bool {
	return b.Err == nil
}

// Header returns "Day d - part p[ — variant]: ".
func (b Block) Header() string {
	if b.Variant != "" {
		return fmt.Sprintf("Day %d - part %d — %s: ", b.Day, b.Part, b.Variant)
	}
	return fmt.Sprintf("Day %d - part %d: ", b.Day, b.Part)
}

// Body returns the answer, or the inline error marker.
func (b Block) Body() string {
	if b.Err != nil {
		return fmt.Sprintf("<error: %v>", b.Err)
	}
	return b.Output
}

// Render formats the block as it appears in the report, newline included.
func (b Block) Render(timing bool) string {
	header := b.Header()
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(Align(b.Body(), width.StringWidth(header)))
	if timing {
		sb.WriteString(" (")
		sb.WriteString(FormatDuration(b.Elapsed))
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Align joins the lines of body, indenting every line after the first by
// indent spaces. A trailing newline does not produce an extra line.
func Align(body string, indent int) string {
	lines := input.Lines(body)
	return strings.Join(lines, "\n"+strings.Repeat(" ", indent))
}

// FormatDuration picks a unit by magnitude: ns below 1µs, then µs, ms and s
// with two decimals.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%d ns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2f µs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2f ms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2f s", float64(d.Milliseconds())/1000)
	}
}

// Report is the ordered list of executed blocks.
type Report struct {
	Blocks []Block
	Timing bool
}

// Failed returns the number of blocks that rendered an error.
func (r *Report) Failed() int {
	n := 0
	for _, b := range r.Blocks {
		if !b.OK() {
			n++
		}
	}
	return n
}

// String renders the whole report.
func (r *Report) String() string {
	var sb strings.Builder
	for _, b := range r.Blocks {
		sb.WriteString(b.Render(r.Timing))
	}
	return sb.String()
}

// WriteTo writes the rendered report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
