// Package widget holds small ready-made components for the tui runtime.
//
// Box and Border are containers, Grid replaces the default partitioning
// with a fixed column grid, Text paints wrapped text, and Button is a
// clickable label built on area-scoped events.
package widget
