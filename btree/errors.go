package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrFrozen is returned by mutating operations on a frozen tree.
	ErrFrozen = errors.New("btree: tree is frozen")
	// ErrIllegalEdit signals that a tree has been modified or cloned from
	// within an EditRange callback.
	ErrIllegalEdit = errors.New("btree: tree changed during range edit")
	// ErrCorrupted is returned by Check for a tree violating its invariants.
	ErrCorrupted = errors.New("btree: tree structure corrupted")
)
