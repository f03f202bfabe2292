package git

import (
	"fmt"
	"strings"
)

// Commit represents a single commit in a changelog range.
type Commit struct {
	Hash    string
	Author  string
	Message string
}

// Backend selects how the history reader talks to the repository.
type Backend string

const (
	// BackendCLI shells out to the git executable.
	BackendCLI Backend = "cli"
	// BackendGoGit reads the repository in-process with go-git.
	BackendGoGit Backend = "gogit"
)

// ParseBackend converts a user-supplied backend name into a Backend.
// An empty name selects the git CLI.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cli", "git", "exec":
		return BackendCLI, nil
	case "gogit", "go-git", "native":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("unknown history backend %q (expected cli or gogit)", s)
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath  string
	GitBinary string   // Executable used by the CLI backend (default: "git")
	Include   []string // Glob patterns a tag must match
	Exclude   []string // Glob patterns that drop a tag
}
