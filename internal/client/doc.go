// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle: sign in, browse the document collections, switch accounts.
package client
