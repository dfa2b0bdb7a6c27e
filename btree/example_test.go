package btree_test

import (
	"fmt"

	"github.com/npillmayer/sorted/btree"
	"github.com/npillmayer/sorted/order"
)

func ExampleTree_Clone() {
	tree, _ := btree.New[string, int](btree.Config[string]{Compare: order.Natural[string]})
	tree.Set("one", 1)
	tree.Set("two", 2)
	snapshot := tree.Clone()
	tree.Set("three", 3)
	tree.Delete("one")
	fmt.Println(tree)
	fmt.Println(snapshot)
	// Output:
	// {three:3 two:2}
	// {one:1 two:2}
}

func ExampleTree_EditRange() {
	tree, _ := btree.New[int, string](btree.Config[int]{Compare: order.Natural[int], MaxNodeSize: 4})
	for i := 1; i <= 6; i++ {
		tree.Set(i, "v")
	}
	tree.EditRange(2, 5, false, func(k int, v string, _ int) (string, btree.Action) {
		if k%2 == 0 {
			return v, btree.Delete
		}
		return "odd", btree.Replace
	})
	fmt.Println(tree)
	// Output:
	// {1:v 3:odd 5:v 6:v}
}
