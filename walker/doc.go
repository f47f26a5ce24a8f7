// Package walker provides depth-limited, cycle-aware traversal of value graphs.
//
// A value graph is built from scalars, *value.Array and *value.Object (see
// package value). Arrays and objects are reference types: the same pointer may
// be reachable from several parents, and may even be reachable from itself.
// The walker classifies every node it reaches and hands it to a visitor:
//
//   - [Leaf]: a non-reference value (null, bool, number, string, opaque)
//   - [Object]: an array or object that is not already on the active path
//   - [Loop]: an array or object that is one of its own ancestors
//
// Loops are reported, never descended. Shared but acyclic subgraphs are visited
// once per path that reaches them.
//
// # Quick Start
//
//	walker.Traverse(doc, -1, func(path []string, v any, kind walker.NodeKind) walker.Action {
//	    if kind == walker.Leaf {
//	        fmt.Println(strings.Join(path, "."), v)
//	    }
//	    return walker.Continue
//	})
//
// # Flow Control
//
// Visitors return an [Action] to control traversal:
//
//   - [Continue]: descend into the node's children (arrays in index order,
//     objects in insertion order)
//   - [SkipChildren]: do not descend, continue with siblings
//   - [Stop]: abandon the traversal immediately
//
// # Depth Limiting
//
// A negative maxDepth means unlimited. Otherwise a node whose path length has
// reached maxDepth is still visited but its children are not enumerated, so
// maxDepth 1 visits the root and its immediate children only.
//
// # Configured Walkers
//
// [Walk] accepts functional options for callers that want a logger or prefer
// an options style:
//
//	err := walker.Walk(doc,
//	    walker.WithMaxDepth(3),
//	    walker.WithVisitor(visit),
//	    walker.WithLogger(logger),
//	)
//
// # Collectors
//
// Several derived artifacts are built purely from the visitor stream:
// [FuzzyFind], [DataProperties], [FlattenedProperties], [CollectLeaves],
// [CollectStats] and [FindCycle]. [DataInsights] summarizes records as
// per-property value histograms.
//
// Every call owns its ancestor stack. Nothing is cached between calls, so
// concurrent traversals of independent (or unmodified) graphs are safe.
package walker
