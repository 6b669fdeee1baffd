package dummyyear

//aoc:day3, part1
func greet(lines []string) int {
	lines = append(lines, "Hello, world")
	total := 0
	for i := range lines {
		lines[i] += "x"
		total += len(lines[i])
	}
	return total
}

//aoc:day3, part2
func countSegments(segments [][]byte) int {
	return len(segments)
}
