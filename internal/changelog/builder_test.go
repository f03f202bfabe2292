package changelog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masmgr/git-changelog/internal/actions"
	"github.com/masmgr/git-changelog/internal/git"
)

func newTestBuilder(tags []string) (*Builder, *git.MockHistoryReader, *actions.RecordingLogger) {
	reader := git.NewMockHistoryReader(tags, sampleCommits())
	log := &actions.RecordingLogger{}
	return NewBuilder(reader, log), reader, log
}

func defaultOptions() Options {
	return Options{ServerURL: "https://github.com", Repository: "owner/repo"}
}

func TestBuild_AutoDetectsTags(t *testing.T) {
	builder, reader, log := newTestBuilder([]string{"v1.0.0", "v1.1.0"})

	result, err := builder.Build(context.Background(), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, reader.TagsCalls)
	assert.Equal(t, []git.RangeQuery{{From: "v1.0.0", To: "v1.1.0"}}, reader.CommitsCalls)
	assert.Equal(t, "v1.0.0", result.PreviousTag)
	assert.Equal(t, "v1.1.0", result.LatestTag)
	assert.Contains(t, result.Log, "abc1234")
	assert.Contains(t, result.MarkdownLog, "[`abc1234`]")
	assert.Equal(t, sampleCommits(), result.Commits)

	assert.Empty(t, log.Messages("warning"))
	assert.Contains(t, log.Messages("info"), "Found 2 commits between v1.0.0 and v1.1.0")
	assert.Equal(t, []string{"Changelog:\n" + result.Log}, log.Messages("debug"))
}

func TestBuild_UsesLastTwoOfManyTags(t *testing.T) {
	builder, reader, _ := newTestBuilder([]string{"v0.1.0", "v0.2.0", "v1.0.0", "v2.0.0"})

	result, err := builder.Build(context.Background(), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []git.RangeQuery{{From: "v1.0.0", To: "v2.0.0"}}, reader.CommitsCalls)
	assert.Equal(t, "v1.0.0", result.PreviousTag)
	assert.Equal(t, "v2.0.0", result.LatestTag)
}

func TestBuild_UsesManualTagInputs(t *testing.T) {
	builder, reader, _ := newTestBuilder([]string{"v1.0.0", "v1.1.0"})

	opts := defaultOptions()
	opts.FromTag = "v0.9.0"
	opts.ToTag = "v1.0.0"

	result, err := builder.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Zero(t, reader.TagsCalls, "Tags must not be queried when to-tag is given")
	assert.Equal(t, []git.RangeQuery{{From: "v0.9.0", To: "v1.0.0"}}, reader.CommitsCalls)
	assert.Equal(t, "v0.9.0", result.PreviousTag)
	assert.Equal(t, "v1.0.0", result.LatestTag)
}

func TestBuild_ToTagOnly(t *testing.T) {
	builder, reader, _ := newTestBuilder([]string{"v1.0.0", "v1.1.0"})

	opts := defaultOptions()
	opts.ToTag = "v1.0.0"

	result, err := builder.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Zero(t, reader.TagsCalls)
	assert.Equal(t, []git.RangeQuery{{To: "v1.0.0"}}, reader.CommitsCalls)
	assert.Equal(t, "", result.PreviousTag)
}

func TestBuild_FromTagOnly(t *testing.T) {
	builder, reader, _ := newTestBuilder([]string{"v1.0.0", "v1.1.0", "v1.2.0"})

	opts := defaultOptions()
	opts.FromTag = "v1.0.0"

	result, err := builder.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, reader.TagsCalls)
	assert.Equal(t, []git.RangeQuery{{From: "v1.0.0", To: "v1.2.0"}}, reader.CommitsCalls)
	assert.Equal(t, "v1.0.0", result.PreviousTag)
	assert.Equal(t, "v1.2.0", result.LatestTag)
}

func TestBuild_NoTags(t *testing.T) {
	builder, reader, log := newTestBuilder([]string{})

	result, err := builder.Build(context.Background(), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"No tags found in repository"}, log.Messages("warning"))
	assert.Empty(t, reader.CommitsCalls, "no commit query without tags")
	assert.Equal(t, "", result.PreviousTag)
	assert.Equal(t, "", result.LatestTag)
	assert.Equal(t, "", result.Log)
	assert.Equal(t, "", result.MarkdownLog)
	assert.Empty(t, result.Commits)
}

func TestBuild_SingleTag(t *testing.T) {
	builder, reader, log := newTestBuilder([]string{"v1.0.0"})

	result, err := builder.Build(context.Background(), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Only one tag found, changelog will include all commits up to this tag"},
		log.Messages("warning"))
	assert.Equal(t, []git.RangeQuery{{From: "", To: "v1.0.0"}}, reader.CommitsCalls)
	assert.Equal(t, "", result.PreviousTag)
	assert.Equal(t, "v1.0.0", result.LatestTag)
	assert.Contains(t, log.Messages("info"), "Found 2 commits between the first commit and v1.0.0")
}

func TestBuild_SingleTagKeepsCallerFrom(t *testing.T) {
	builder, reader, log := newTestBuilder([]string{"v1.0.0"})

	opts := defaultOptions()
	opts.FromTag = "v0.1.0"

	result, err := builder.Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Only one tag found, changelog will include commits from v0.1.0 up to this tag"},
		log.Messages("warning"))
	assert.Equal(t, []git.RangeQuery{{From: "v0.1.0", To: "v1.0.0"}}, reader.CommitsCalls)
	assert.Equal(t, "v0.1.0", result.PreviousTag)
}

func TestBuild_PropagatesTagsError(t *testing.T) {
	builder, reader, _ := newTestBuilder(nil)
	reader.TagsErr = errors.New("Git command failed")

	result, err := builder.Build(context.Background(), defaultOptions())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "Git command failed", err.Error())
	assert.Empty(t, reader.CommitsCalls)
}

func TestBuild_PropagatesCommitsError(t *testing.T) {
	builder, reader, _ := newTestBuilder([]string{"v1.0.0", "v1.1.0"})
	reader.CommitsErr = errors.New("bad revision")

	result, err := builder.Build(context.Background(), defaultOptions())

	assert.Nil(t, result)
	assert.EqualError(t, err, "bad revision")
}

func TestBuild_NoCommitsInRange(t *testing.T) {
	reader := git.NewMockHistoryReader([]string{"v1.0.0", "v1.0.1"}, []git.Commit{})
	builder := NewBuilder(reader, &actions.RecordingLogger{})

	result, err := builder.Build(context.Background(), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", result.PreviousTag)
	assert.Equal(t, "v1.0.1", result.LatestTag)
	assert.Equal(t, "", result.Log)
	assert.Equal(t, "", result.MarkdownLog)
}

func TestBuild_ServerURL(t *testing.T) {
	tests := map[string]struct {
		serverURL string
		want      string
	}{
		"default when unset":     {serverURL: "", want: "https://github.com/owner/repo/commit/abc1234"},
		"enterprise server":      {serverURL: "https://ghe.example.com", want: "https://ghe.example.com/owner/repo/commit/abc1234"},
		"trailing slash":         {serverURL: "https://ghe.example.com/", want: "https://ghe.example.com/owner/repo/commit/abc1234"},
		"surrounding whitespace": {serverURL: " https://github.com ", want: "https://github.com/owner/repo/commit/abc1234"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			builder, _, _ := newTestBuilder([]string{"v1.0.0", "v1.1.0"})

			result, err := builder.Build(context.Background(), Options{ServerURL: tt.serverURL, Repository: "owner/repo"})
			require.NoError(t, err)
			assert.Contains(t, result.MarkdownLog, "("+tt.want+")")
		})
	}
}
