// Package router maps chat commands onto the word store and renders the
// replies transports deliver.
//
// Command names are decoded once into a Kind and dispatched with a single
// switch. Every call produces a Result, including for failures: a missing
// word renders a usage hint, storage failures render a generic message and
// are logged.
package router
