package output

import (
	"encoding/json"
	"fmt"
)

// JSONWriter writes the run's outputs and commits as one JSON document.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a changelog run.
type JSONReport struct {
	Repo        string       `json:"repo"`
	GeneratedAt string       `json:"generatedAt"`
	PreviousTag string       `json:"previousTag"`
	LatestTag   string       `json:"latestTag"`
	Log         string       `json:"log"`
	MarkdownLog string       `json:"markdownLog"`
	TotalCount  int          `json:"totalCommits"`
	Commits     []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// Write outputs the changelog as JSON.
func (w *JSONWriter) Write(report *ChangelogReport, options OutputOptions) error {
	result := report.Result

	commits := make([]JSONCommit, len(result.Commits))
	for i, c := range result.Commits {
		commits[i] = JSONCommit{Hash: c.Hash, Author: c.Author, Message: c.Message}
	}

	doc := JSONReport{
		Repo:        report.RepoPath,
		GeneratedAt: formatGeneratedAt(report.GeneratedAt),
		PreviousTag: result.PreviousTag,
		LatestTag:   result.LatestTag,
		Log:         result.Log,
		MarkdownLog: result.MarkdownLog,
		TotalCount:  len(commits),
		Commits:     commits,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
