// Package graph implements the graph widget: named circular nodes joined
// by straight or curved edges, with optional weights and arrowheads.
//
// The widget keeps a logical model (node and edge maps) and a visual tree
// (one group per node and edge) synchronized through every mutation.
// Edge geometry is derived: endpoints sit on the node circle boundaries,
// opposite edges between the same pair of nodes shift apart so both stay
// readable, and arrowheads mark directed edges whose reverse was absent
// when they were added. Node layout delegates to the layout package.
package graph
