// Package inspect classifies arbitrary Go values into inspectable variants and
// binds them to slots that a driver can describe, read, write and descend into.
//
// Classification is driven by the declared type of a member, never by the
// runtime value, so a slot keeps the same shape while its value is nil:
//
//	in := inspect.New(nil)
//	root := in.Root("cfg", &cfg)
//	children, err := root.Inspect()
//
// Struct fields are read through reflect. Package-level variables have no
// owner and are reached through a Registry, which attaches them to a struct
// type so they appear after the instance fields when that type is inspected.
//
// The inspected graph is owned by the caller. Nothing in this package locks or
// snapshots it; a driver that inspects a concurrently mutated graph must
// serialize its calls with the graph's own writers.
package inspect
