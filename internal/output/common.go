package output

import (
	"io"
	"os"
	"time"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

// stdout is where reports go when no output path is set.
var stdout io.Writer = os.Stdout

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// openAppendWriter opens outputPath for appending, creating it if needed.
func openAppendWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return stdout, nil, nil
	}
	file, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func formatGeneratedAt(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format(reportDateTimeLayout)
}

// writeBody writes s followed by a newline, or nothing for an empty s.
func writeBody(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
