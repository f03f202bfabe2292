package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/git-changelog/internal/changelog"
	"github.com/masmgr/git-changelog/internal/git"
)

func sampleReport() *ChangelogReport {
	commits := []git.Commit{
		{Hash: "abc1234", Author: "alice", Message: "Add feature"},
		{Hash: "def5678", Author: "bob", Message: "Fix bug, again"},
	}
	return &ChangelogReport{
		RepoPath:    "/repo",
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Result: &changelog.Result{
			PreviousTag: "v1.0.0",
			LatestTag:   "v1.1.0",
			Log:         changelog.FormatAsText(commits),
			MarkdownLog: changelog.FormatAsMarkdown(commits, "https://github.com", "owner/repo"),
			Commits:     commits,
		},
	}
}

func emptyReport() *ChangelogReport {
	return &ChangelogReport{
		RepoPath: "/repo",
		Result:   &changelog.Result{Commits: []git.Commit{}},
	}
}

func writeToTempFile(t *testing.T, w ReportWriter, report *ChangelogReport, format OutputFormat) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	if err := w.Write(report, OutputOptions{Format: format, OutputPath: path}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return string(data)
}
