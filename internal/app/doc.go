// Package app loads configuration and wires the word store, router and
// logger for the CLI.
//
// One Wire is built per process and handed to whichever transport runs;
// nothing in the tree reaches for a package-level store.
package app
