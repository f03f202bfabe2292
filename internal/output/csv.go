package output

import (
	"encoding/csv"
)

// CSVWriter writes one row per commit.
type CSVWriter struct{}

// Write outputs the commits as CSV.
func (w *CSVWriter) Write(report *ChangelogReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"Hash", "Author", "Message"}); err != nil {
		return err
	}
	for _, c := range report.Result.Commits {
		if err := writer.Write([]string{c.Hash, c.Author, c.Message}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
