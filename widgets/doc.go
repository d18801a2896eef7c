// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, list rows, stacks, popup overlay)
// - the named style registry used by screens
//
// Not allowed here:
// - key handling, listbox state, or dual-list transfers
package widgets
