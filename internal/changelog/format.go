package changelog

import (
	"fmt"
	"strings"

	"github.com/masmgr/git-changelog/internal/git"
)

// FormatAsText renders one "<hash> - @<author> - <message>" line per commit.
// Lines are joined by a single newline with no trailing newline; no commits
// render as an empty string.
func FormatAsText(commits []git.Commit) string {
	lines := make([]string, len(commits))
	for i, c := range commits {
		lines[i] = fmt.Sprintf("%s - @%s - %s", c.Hash, c.Author, c.Message)
	}
	return strings.Join(lines, "\n")
}

// FormatAsMarkdown renders one line per commit with the abbreviated hash
// linked to the commit page on the hosting platform:
//
//	[`abc1234`](https://github.com/owner/repo/commit/abc1234) @John Doe - Fix bug
func FormatAsMarkdown(commits []git.Commit, serverURL, repository string) string {
	lines := make([]string, len(commits))
	for i, c := range commits {
		lines[i] = fmt.Sprintf("[`%s`](%s) @%s - %s", c.Hash, CommitURL(serverURL, repository, c.Hash), c.Author, c.Message)
	}
	return strings.Join(lines, "\n")
}

// CommitURL returns the web address of a commit.
func CommitURL(serverURL, repository, hash string) string {
	return serverURL + "/" + repository + "/commit/" + hash
}
