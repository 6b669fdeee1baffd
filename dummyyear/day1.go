package dummyyear

import (
	"errors"
	"strconv"
	"strings"
)

//aoc:day1, part1
func part1(input string) int {
	return 2*strings.Count(input, "(") - len(strings.TrimSpace(input))
}

//aoc:day1, part1, str_slice
func part1Lines(lines []string) int {
	floor := 0
	for _, l := range lines {
		floor += part1(l)
	}
	return floor
}

//aoc:day1, part2
func part2(input string) (int, bool) {
	pos, err := part2Result([]byte(input))
	return pos, err == nil
}

// part2Result fails on any byte other than a parenthesis, but returns as
// soon as the basement is reached.
//
//aoc:day1, part2, result
func part2Result(input []byte) (int, error) {
	floor := 0
	for i, c := range input {
		switch {
		case c == '(':
			floor++
		case c == ')' && floor == 0:
			return i + 1, nil
		case c == ')':
			floor--
		default:
			return 0, errors.New("should not be present")
		}
	}
	return 0, errors.New("no answer")
}

//aoc:day1, part2, result_string
func part2ResultString(input string) (string, error) {
	floor := 0
	for i, c := range strings.TrimSpace(input) {
		switch {
		case c == '(':
			floor++
		case floor == 0:
			return strconv.Itoa(i + 1), nil
		default:
			floor--
		}
	}
	return "", errors.New("no answer")
}
