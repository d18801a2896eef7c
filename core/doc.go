// Package core contains the interaction contracts shared by the control
// screens.
//
// Allowed here:
// - key registry and default bindings
// - listbox interaction state (cursor, highlight set, filter)
// - message contracts and footer/status rendering helpers
//
// Not allowed here:
// - the dual-list partition itself (core/duallist)
// - concrete screen implementations or low-level widget primitives
package core
