// Package bridge adapts the dual-list engine to a form host: the host sets
// named string properties, reads the value field, and listens for
// ntx-value-change events. Property changes are translated into explicit
// engine calls; engine notifications are forwarded as events.
package bridge
