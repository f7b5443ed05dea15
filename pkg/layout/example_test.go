package layout_test

import (
	"fmt"

	"github.com/vizlab/dsanim/pkg/layout"
)

func ExampleGet() {
	fn, err := layout.Get(layout.Circular)
	if err != nil {
		fmt.Println(err)
		return
	}
	pos := fn([]string{"a", "b", "c"}, nil)
	fmt.Println(len(pos))
	// Output: 3
}

func ExampleAll() {
	for _, alg := range layout.All() {
		fmt.Println(alg)
	}
	// Output:
	// spring
	// circular
	// shell
	// kamada-kawai
	// random
}
