package eqparts_test

import (
	"fmt"

	"github.com/WinPooh32/eqparts"
)

func ExampleSplit() {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	parts, err := eqparts.Split(data, 4)
	if err != nil {
		panic(err)
	}

	for part := range parts.All() {
		fmt.Println(part)
	}

	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7 8]
	// [9 10]
}

func ExampleSplit_fewElements() {
	parts, err := eqparts.Split([]int{1, 2}, 5)
	if err != nil {
		panic(err)
	}

	for part := range parts.All() {
		fmt.Println(part)
	}

	// Output:
	// [1]
	// [2]
}

func ExampleTake() {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	parts, err := eqparts.Take(data, 3)
	if err != nil {
		panic(err)
	}

	for part := range parts.All() {
		fmt.Println(part)
	}

	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7 8 9]
}

func ExampleViews_Next() {
	parts, err := eqparts.Split([]string{"a", "b", "c", "d", "e", "f", "g"}, 3)
	if err != nil {
		panic(err)
	}

	for {
		part, ok := parts.Next()
		if !ok {
			break
		}

		fmt.Println(part, parts.Remaining())
	}

	// Output:
	// [a b c] 4
	// [d e] 2
	// [f g] 0
}

func ExamplePlan_Bounds() {
	plan, err := eqparts.NewPlan(7, 3)
	if err != nil {
		panic(err)
	}

	for lo, hi := range plan.Bounds() {
		fmt.Println(lo, hi)
	}

	// Output:
	// 0 3
	// 3 5
	// 5 7
}
