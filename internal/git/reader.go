package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// abbrevLength matches git's default abbreviated hash length.
const abbrevLength = 7

// GoGitReader reads tags and commits in-process with go-git, without
// requiring a git executable on the runner.
type GoGitReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewGoGitReader opens the repository at opts.RepoPath, searching parent
// directories for the .git directory.
func NewGoGitReader(opts ReadOptions) (*GoGitReader, error) {
	path := opts.RepoPath
	if path == "" {
		path = "."
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &GoGitReader{repo: repo, opts: opts}, nil
}

// Tags returns all tag names in version order.
func (r *GoGitReader) Tags(ctx context.Context) ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	tags := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	logDebug("[git] go-git: found %d tags", len(tags))

	sortVersions(tags)
	return filterTags(tags, r.opts.Include, r.opts.Exclude)
}

// CommitsBetween walks the history of to in committer-time order, newest
// first, skipping every commit that is also reachable from from.
func (r *GoGitReader) CommitsBetween(ctx context.Context, from, to string) ([]Commit, error) {
	if err := validateRevisions(from, to); err != nil {
		return nil, err
	}
	logDebug("[git] go-git: log %s", revisionRange(from, to))

	toHash, err := r.resolve(to)
	if err != nil {
		return nil, err
	}

	excluded := make(map[plumbing.Hash]struct{})
	if from != "" {
		fromHash, err := r.resolve(from)
		if err != nil {
			return nil, err
		}
		err = r.walk(ctx, fromHash, func(c *object.Commit) {
			excluded[c.Hash] = struct{}{}
		})
		if err != nil {
			return nil, err
		}
	}

	commits := []Commit{}
	err = r.walk(ctx, toHash, func(c *object.Commit) {
		if _, skip := excluded[c.Hash]; skip {
			return
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String()[:abbrevLength],
			Author:  c.Author.Name,
			Message: subject(c.Message),
		})
	})
	if err != nil {
		return nil, err
	}

	return commits, nil
}

func (r *GoGitReader) resolve(rev string) (plumbing.Hash, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving revision %s: %w", rev, err)
	}
	return *hash, nil
}

func (r *GoGitReader) walk(ctx context.Context, from plumbing.Hash, fn func(c *object.Commit)) error {
	iter, err := r.repo.Log(&git.LogOptions{
		From:  from,
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return fmt.Errorf("reading log from %s: %w", from, err)
	}
	defer iter.Close()

	return iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(c)
		return nil
	})
}

// subject mirrors git's %s placeholder: the first paragraph of the
// message with its lines joined by spaces.
func subject(message string) string {
	message = strings.TrimLeft(message, "\n")
	if idx := strings.Index(message, "\n\n"); idx != -1 {
		message = message[:idx]
	}
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
