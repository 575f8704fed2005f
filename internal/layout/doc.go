// Package layout implements the rectangle partitioner used by the runtime.
//
// A parent rectangle is first shrunk by its own offset and margin, then split
// along the main axis from each child's main-axis Constraint. Every resulting
// slice is sized on the cross axis independently from that child's own
// cross-axis Constraint. Types are re-exported through the root tui package.
//
// The main entry points are [Style.Inner] and [Split].
package layout
