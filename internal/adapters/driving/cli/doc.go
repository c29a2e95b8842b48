// Package cli is the cobra command-line adapter for convert-code-refs.
//
// The root command converts the files named on the command line and prints
// a per-file and total count of linked code references. Services are wired
// by the entry point through Configure.
package cli
