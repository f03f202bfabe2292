package git

import "context"

// HistoryReader answers the two history queries a changelog needs.
// Implementations must return tags in ascending version order and commits
// newest first; callers never re-sort either list.
type HistoryReader interface {
	// Tags returns every tag in the repository, lowest version first.
	Tags(ctx context.Context) ([]string, error)

	// CommitsBetween returns the commits reachable from to but not from from.
	// An empty from selects the whole history of to.
	CommitsBetween(ctx context.Context, from, to string) ([]Commit, error)
}

// Compile-time interface conformance checks.
var (
	_ HistoryReader = (*CLIReader)(nil)
	_ HistoryReader = (*GoGitReader)(nil)
)

// NewReader creates the history reader for the requested backend.
func NewReader(backend Backend, opts ReadOptions) (HistoryReader, error) {
	switch backend {
	case BackendGoGit:
		return NewGoGitReader(opts)
	default:
		return NewCLIReader(opts), nil
	}
}
