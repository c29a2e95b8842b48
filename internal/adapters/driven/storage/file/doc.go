// Package file provides a disk-backed DocumentStore.
//
// Documents are read in full and written back to the same path with the
// original permission bits. There is no locking: a second process writing
// the same file during a run is not guarded against.
package file
