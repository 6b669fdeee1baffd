package dummyyear

//aoc:day4, part1, separator=','
func sum(numbers []int) int {
	total := 0
	for _, n := range numbers {
		total += n
	}
	return total
}

//aoc:day4, part1, fixed
func sumFixed() int {
	return sum([]int{3, 9, 12})
}

//aoc:day4, part2, separator=","
func firstMultipleOfSeven(numbers []int) (int, bool) {
	for _, n := range numbers {
		if n%7 == 0 {
			return n, true
		}
	}
	return 0, false
}
