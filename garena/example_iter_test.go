package garena_test

import (
	"fmt"

	"github.com/JuergenFranziskus/typed-garena/garena"
)

// ExampleArena_All walks the live entries in slot order. Free slots are
// skipped, so only current values and their handles appear.
func ExampleArena_All() {
	arena := garena.New[string]()
	arena.Insert("alpha")
	beta := arena.Insert("beta")
	arena.Insert("gamma")
	arena.Remove(beta)

	for id, v := range arena.All() {
		fmt.Printf("%v: %s\n", id, *v)
	}

	// Output:
	// 0: alpha
	// 2: gamma
}

// ExampleArena_Backward walks the same entries from the highest slot down.
func ExampleArena_Backward() {
	arena := garena.New[int]()
	for i := 1; i <= 4; i++ {
		arena.Insert(i * 10)
	}

	for _, v := range arena.Backward() {
		fmt.Println(*v)
	}

	// Output:
	// 40
	// 30
	// 20
	// 10
}

// ExampleArena_Values sums the live values without touching handles.
func ExampleArena_Values() {
	arena := garena.New[int]()
	arena.Insert(1)
	arena.Insert(2)
	arena.Insert(3)

	sum := 0
	for v := range arena.Values() {
		sum += v
	}
	fmt.Println(sum)

	// Output:
	// 6
}
