package widget_test

import (
	"fmt"

	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/widget"
)

func ExampleArray_PopAt() {
	a := widget.NewArray([]string{"1", "2", "3"})
	a.PopAt(0)
	fmt.Println(a.Values())
	// Output: [2 3]
}

func ExampleArray_AddIndexes() {
	a := widget.NewArray([]string{"a", "b"})
	if err := a.AddIndexes(geom.Up, widget.DefaultIndexBuff); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Indexed())
	// Output: true
}

func ExampleStack_Push() {
	s := widget.NewStack(nil)
	s.Push("a").Push("b")
	s.Pop()
	fmt.Println(s.Peek().Value())
	// Output: a
}

func ExampleVariable_SetValue() {
	v := widget.NewVariable("i", "0")
	v.SetValue("1")
	fmt.Println(v.Value())
	// Output: 1
}
