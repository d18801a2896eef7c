// Package screens contains full-screen control flows built on core state and
// widgets.
//
// Allowed here:
// - tea.Model implementations that own a control and its interaction state
// - key dispatch through core.KeyRegistry
//
// Not allowed here:
// - transfer semantics (they live in core/duallist)
// - low-level widget/layout primitives
package screens
