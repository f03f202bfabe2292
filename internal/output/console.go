package output

import (
	"fmt"

	"github.com/fatih/color"
)

// ConsoleWriter writes a colored changelog for a terminal.
type ConsoleWriter struct{}

// Write outputs the changelog to the console.
func (w *ConsoleWriter) Write(report *ChangelogReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	result := report.Result
	title := color.New(color.FgGreen).Add(color.Underline)
	hash := color.New(color.FgYellow)
	author := color.New(color.FgCyan)

	if result.LatestTag == "" {
		color.New(color.FgYellow).Fprintln(out, "No tags found; changelog is empty.")
		return nil
	}

	if result.PreviousTag != "" {
		title.Fprintf(out, "Changes from %s to %s", result.PreviousTag, result.LatestTag)
	} else {
		title.Fprintf(out, "Changes up to %s", result.LatestTag)
	}
	fmt.Fprintf(out, " (%d commits)\n\n", len(result.Commits))

	for _, c := range result.Commits {
		fmt.Fprintf(out, "  %s - %s - %s\n", hash.Sprint(c.Hash), author.Sprint("@"+c.Author), c.Message)
	}

	return nil
}
