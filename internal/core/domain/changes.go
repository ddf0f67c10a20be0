package domain

import (
	"iter"
	"slices"
)

// ChangeKind classifies a changed input file.
type ChangeKind int

const (
	// ChangeAdded indicates a file that did not exist during the previous
	// execution.
	ChangeAdded ChangeKind = iota
	// ChangeModified indicates a file whose content changed.
	ChangeModified
	// ChangeRemoved indicates a file that disappeared since the previous
	// execution.
	ChangeRemoved
)

// String returns the string representation of the ChangeKind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// FileChange is one changed input file.
type FileChange struct {
	Path InternedString `json:"path"`
	Kind ChangeKind     `json:"kind"`
}

// InputChanges reports which task inputs changed since the previous
// execution.
type InputChanges interface {
	// Incremental reports whether the change set is exhaustive. When false
	// the task must treat every input as changed.
	Incremental() bool
	// Changes yields the changed inputs in discovery order.
	Changes() iter.Seq[FileChange]
}

// FileChanges is a ready-made InputChanges backed by a slice.
type FileChanges struct {
	incremental bool
	changes     []FileChange
}

// NewFileChanges creates a FileChanges value from the given changes.
func NewFileChanges(incremental bool, changes ...FileChange) *FileChanges {
	return &FileChanges{
		incremental: incremental,
		changes:     slices.Clone(changes),
	}
}

// Incremental reports whether the change set is exhaustive.
func (c *FileChanges) Incremental() bool {
	return c.incremental
}

// Changes yields the changed inputs in discovery order.
func (c *FileChanges) Changes() iter.Seq[FileChange] {
	return func(yield func(FileChange) bool) {
		for _, change := range c.changes {
			if !yield(change) {
				return
			}
		}
	}
}
