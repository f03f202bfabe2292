package changelog

import (
	"context"
	"strings"

	"github.com/masmgr/git-changelog/internal/actions"
	"github.com/masmgr/git-changelog/internal/git"
)

const (
	warnNoTags    = "No tags found in repository"
	warnSingleTag = "Only one tag found, changelog will include all commits up to this tag"

	// Used instead of warnSingleTag when the caller bounded the range.
	warnSingleTagFrom = "Only one tag found, changelog will include commits from %s up to this tag"
)

// Options are the caller-supplied inputs of one changelog run.
// Empty strings mean "not set".
type Options struct {
	FromTag    string
	ToTag      string
	ServerURL  string // Defaults to actions.DefaultServerURL
	Repository string // owner/name
}

// Result holds the four named outputs of a run plus the commits they were
// rendered from. On the no-tags path every field is empty.
type Result struct {
	PreviousTag string
	LatestTag   string
	Log         string
	MarkdownLog string
	Commits     []git.Commit
}

// Builder resolves the tag range, fetches the commits and renders them.
type Builder struct {
	reader git.HistoryReader
	log    actions.Logger
}

// NewBuilder creates a builder reading history through reader.
func NewBuilder(reader git.HistoryReader, log actions.Logger) *Builder {
	return &Builder{reader: reader, log: log}
}

// Build runs the changelog pipeline once. Errors from the history reader
// are returned as they are so the reported failure carries their message.
func (b *Builder) Build(ctx context.Context, opts Options) (*Result, error) {
	from, to, ok, err := b.resolveRange(ctx, opts.FromTag, opts.ToTag)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Result{Commits: []git.Commit{}}, nil
	}

	b.log.Info("previousTag: %s", from)
	b.log.Info("latestTag: %s", to)

	commits, err := b.reader.CommitsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	b.log.Info("Found %d commits between %s and %s", len(commits), rangeStart(from), to)

	text := FormatAsText(commits)
	b.log.Debug("Changelog:\n%s", text)

	return &Result{
		PreviousTag: from,
		LatestTag:   to,
		Log:         text,
		MarkdownLog: FormatAsMarkdown(commits, serverURL(opts.ServerURL), opts.Repository),
		Commits:     commits,
	}, nil
}

// resolveRange applies the tag selection policy. ok is false when the
// repository has no tags and the run should finish with empty outputs.
func (b *Builder) resolveRange(ctx context.Context, fromTag, toTag string) (from, to string, ok bool, err error) {
	from, to = fromTag, toTag
	if to != "" {
		return from, to, true, nil
	}

	tags, err := b.reader.Tags(ctx)
	if err != nil {
		return "", "", false, err
	}

	switch len(tags) {
	case 0:
		b.log.Warning(warnNoTags)
		return "", "", false, nil
	case 1:
		if from != "" {
			b.log.Warning(warnSingleTagFrom, from)
		} else {
			b.log.Warning(warnSingleTag)
		}
		return from, tags[0], true, nil
	}

	to = tags[len(tags)-1]
	if from == "" {
		from = tags[len(tags)-2]
	}
	return from, to, true, nil
}

func serverURL(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	if s == "" {
		return actions.DefaultServerURL
	}
	return s
}

func rangeStart(from string) string {
	if from == "" {
		return "the first commit"
	}
	return from
}
