// Package dsl provides a fluent builder for custom graph inputs.
//
// The graph family's default inputs are the bundled sample graph and a
// seeded random graph. Hosts that want a specific topology build it
// here and run it directly:
//
//	g, err := dsl.New().
//		Edge("A", "B", 4).
//		Edge("B", "C", 2).
//		Edge("A", "C", 7).
//		Build()
//	if err != nil {
//		return err
//	}
//
//	log, counters, err := graph.Run(g, graph.KruskalMST)
//
// Node order follows first mention, which keeps runs over built graphs
// deterministic.
package dsl
