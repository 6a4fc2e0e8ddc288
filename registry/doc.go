// Package registry provides the ordered, name-keyed container underlying
// every symbol collection in this module.
//
// A Registry maps qualified names to entries while preserving insertion
// order, because iteration order is semantically meaningful to consumers
// that render or generate output from the model. Duplicate handling is a
// policy: a registry is constructed with a default (return the existing
// entry, or reject the insert), and every insert may override it per call.
//
// Registries perform no I/O and carry no locks; callers that share one
// across goroutines must synchronize externally.
package registry
