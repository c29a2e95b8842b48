// Package memory provides in-memory implementations of driven ports.
// They are used by service and CLI tests in place of the disk adapters.
package memory
