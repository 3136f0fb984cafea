package git

import "context"

// Source defines the interface for reading a repository's commit history.
// This abstraction allows for easier testing and potential alternative implementations.
type Source interface {
	// ReadLog reads the commit history and returns commits newest first.
	ReadLog(ctx context.Context) ([]Commit, error)
}

// Compile-time interface conformance check.
var _ Source = (*LogReader)(nil)
