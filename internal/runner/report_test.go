package runner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 ns"},
		{500 * time.Nanosecond, "500 ns"},
		{999 * time.Nanosecond, "999 ns"},
		{1500 * time.Nanosecond, "1.50 µs"},
		{2500 * time.Microsecond, "2.50 ms"},
		{1200 * time.Millisecond, "1.20 s"},
		{90 * time.Second, "90.00 s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), tt.d.String())
	}
}

func TestBlock_Header(t *testing.T) {
	assert.Equal(t, "Day 2 - part 2: ", Block{Day: 2, Part: 2}.Header())
	assert.Equal(t, "Day 2 - part 2 — no_eol: ", Block{Day: 2, Part: 2, Variant: "no_eol"}.Header())
	assert.Len(t, Block{Day: 2, Part: 2}.Header(), 16)
}

func TestBlock_Render_Aligned(t *testing.T) {
	got := Block{Day: 2, Part: 2, Output: "20x3x11\n15x27x5"}.Render(false)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Equal(t, []string{"Day 2 - part 2: 20x3x11", strings.Repeat(" ", 16) + "15x27x5"}, lines)
}

func TestBlock_Render_AlignsOnDisplayWidth(t *testing.T) {
	// "—" is three bytes but one column.
	got := Block{Day: 2, Part: 2, Variant: "no_eol", Output: "20x3x11\n15x27x5\n"}.Render(false)

	assert.Equal(t, "Day 2 - part 2 — no_eol: 20x3x11\n"+strings.Repeat(" ", 25)+"15x27x5\n", got)
}

func TestBlock_Render_Timing(t *testing.T) {
	got := Block{Day: 1, Part: 1, Output: "3", Elapsed: 1500 * time.Nanosecond}.Render(true)
	assert.Equal(t, "Day 1 - part 1: 3 (1.50 µs)\n", got)

	got = Block{Day: 1, Part: 1, Output: "a\nb", Elapsed: 2 * time.Second}.Render(true)
	assert.Equal(t, "Day 1 - part 1: a\n                b (2.00 s)\n", got)
}

func TestBlock_Render_Error(t *testing.T) {
	b := Block{Day: 4, Part: 2, Err: errors.New("no output for day 4 part 2")}

	assert.False(t, b.OK())
	assert.Equal(t, "Day 4 - part 2: <error: no output for day 4 part 2>\n", b.Render(false))
}

func TestAlign(t *testing.T) {
	assert.Equal(t, "", Align("", 4))
	assert.Equal(t, "x", Align("x\n", 4))
	assert.Equal(t, "a\n  b\n  c", Align("a\r\nb\r\nc", 2))
	assert.Equal(t, "a\n  \n  c", Align("a\n\nc", 2))
}

func TestReport_StringAndFailed(t *testing.T) {
	r := &Report{Blocks: []Block{
		{Day: 1, Part: 1, Output: "3"},
		{Day: 1, Part: 2, Err: errors.New("boom")},
	}}

	assert.Equal(t, "Day 1 - part 1: 3\nDay 1 - part 2: <error: boom>\n", r.String())
	assert.Equal(t, 1, r.Failed())

	var sb strings.Builder
	n, err := r.WriteTo(&sb)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(r.String())), n)
	assert.Equal(t, r.String(), sb.String())
}
