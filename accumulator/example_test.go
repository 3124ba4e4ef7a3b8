package accumulator_test

import (
	"errors"
	"fmt"

	"github.com/philipp01105/bootlog/accumulator"
)

func ExampleAccumulator() {
	a := accumulator.New()
	a.Append("Hello").Append(" ").Append(42)
	fmt.Println(a.String())
	fmt.Println(a.Length())
	// Output:
	// Hello 42
	// 8
}

func ExampleAccumulator_Reverse() {
	a := accumulator.New().Append("ab").Append("c")
	fmt.Println(a.Reverse().String())
	// Output:
	// cab
}

func ExampleAccumulator_Insert() {
	a := accumulator.New("a", "c")
	if err := a.Insert(1, "b"); err != nil {
		panic(err)
	}
	fmt.Println(a.String())

	err := a.Insert(10, "x")
	fmt.Println(errors.Is(err, accumulator.ErrIndexOutOfBounds))
	// Output:
	// abc
	// true
}
