package stoerwagner_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/stoerwagner"
)

// ExampleMinimumCut splits two heavy triangles joined by one light edge.
//
//	a───b       e───f
//	 \ /         \ /
//	  c────(1)────d
func ExampleMinimumCut() {
	g := core.New[string]()
	for _, t := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"d", "e"}, {"e", "f"}, {"d", "f"}} {
		_ = g.AddEdge(t[0], t[1], 5)
	}
	_ = g.AddEdge("c", "d", 1)

	res, err := stoerwagner.MinimumCut(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.CutWeight, res.PartitionSizeA, res.PartitionSizeB)
	fmt.Println(res.SideA, res.SideB)

	// Output:
	// 1 3 3
	// [d e f] [a b c]
}

// ExamplePhase runs a single maximum-adjacency phase without contracting.
func ExamplePhase() {
	g := core.New[int]()
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(1, 3, 2)

	pr, _ := stoerwagner.Phase(g, 1)
	fmt.Println(pr.CutWeight, pr.SecondLast, pr.Last)

	// Output:
	// 3 2 3
}
