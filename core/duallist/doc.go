// Package duallist implements the partition state machine behind the dual
// listbox control.
//
// A Store splits the last ingested label list into an AVAILABLE side and a
// SELECTED side. An Engine wraps the store, deduplicates highlight sets and
// notifies subscribers with the serialized SELECTED side after every change
// that actually mutated state.
//
// Labels are compared by exact string equality. Identical labels are
// interchangeable: moving "A" moves every "A" on that side.
//
// Nothing here is safe for concurrent use. A control owns its engine.
package duallist
