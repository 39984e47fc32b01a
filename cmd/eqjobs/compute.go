package main

// slowCompute returns the integer square root of input using binary search.
func slowCompute(input int) int {
	if input < 2 {
		return input
	}

	left, right := 1, input/2+1

	for left < right {
		mid := left + (right-left+1)/2

		if mid <= input/mid {
			left = mid
		} else {
			right = mid - 1
		}
	}

	return left
}
