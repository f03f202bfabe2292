package output

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Names of the outputs a changelog run publishes.
const (
	OutputPreviousTag = "previousTag"
	OutputLatestTag   = "latestTag"
	OutputLog         = "log"
	OutputMarkdownLog = "markdownLog"
)

// CIWriter appends the run's outputs to the GitHub Actions output file
// ($GITHUB_OUTPUT) using the multi-line "name<<delimiter" form.
type CIWriter struct{}

// newDelimiter returns a heredoc delimiter that is unpredictable to the
// content being written.
var newDelimiter = func() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "ghadelimiter_" + hex.EncodeToString(b), nil
}

// Write appends all four outputs, empty or not.
func (w *CIWriter) Write(report *ChangelogReport, options OutputOptions) error {
	result := report.Result

	outputs := []struct {
		name  string
		value string
	}{
		{OutputPreviousTag, result.PreviousTag},
		{OutputLatestTag, result.LatestTag},
		{OutputLog, result.Log},
		{OutputMarkdownLog, result.MarkdownLog},
	}

	var b strings.Builder
	for _, o := range outputs {
		if err := writeOutputCommand(&b, o.name, o.value); err != nil {
			return err
		}
	}

	out, file, err := openAppendWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	_, err = io.WriteString(out, b.String())
	return err
}

func writeOutputCommand(w io.Writer, name, value string) error {
	delimiter, err := newDelimiter()
	if err != nil {
		return fmt.Errorf("generating output delimiter: %w", err)
	}
	if strings.Contains(name, delimiter) {
		return fmt.Errorf("output name %q must not contain the delimiter %q", name, delimiter)
	}
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("output %q value must not contain the delimiter %q", name, delimiter)
	}
	_, err = fmt.Fprintf(w, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	return err
}
