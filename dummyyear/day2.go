package dummyyear

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Box is a present of dimensions LxWxH.
type Box struct {
	L, W, H int
}

// UnmarshalText parses "20x3x11".
func (b *Box) UnmarshalText(text []byte) error {
	dims := strings.Split(string(text), "x")
	if len(dims) != 3 {
		return fmt.Errorf("invalid box %q", text)
	}
	var err error
	for i, dst := range []*int{&b.L, &b.W, &b.H} {
		if *dst, err = strconv.Atoi(dims[i]); err != nil {
			return fmt.Errorf("invalid box %q: %w", text, err)
		}
	}
	return nil
}

func (b Box) String() string {
	return fmt.Sprintf("%dx%dx%d", b.L, b.W, b.H)
}

//aoc:day2, part1
func wrappingPaper(boxes []Box) int {
	total := 0
	for _, b := range boxes {
		sides := []int{b.L * b.W, b.L * b.H, b.W * b.H}
		slices.Sort(sides)
		total += 3*sides[0] + 2*sides[1] + 2*sides[2]
	}
	return total
}

//aoc:day2, part2
func listBoxes(boxes []Box) string {
	lines := make([]string, len(boxes))
	for i, b := range boxes {
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// listBoxesRaw keeps the trailing newline of the input, which the report
// must not turn into an extra line.
//
//aoc:day2, part2, no_eol
func listBoxesRaw(input string) string {
	return input
}
