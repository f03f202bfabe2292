package output

import (
	"time"

	"github.com/masmgr/git-changelog/internal/changelog"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*CIWriter)(nil)
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*TextWriter)(nil)
	_ ReportWriter = (*CSVWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatCI       OutputFormat = "ci"
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatText     OutputFormat = "text"
	FormatCSV      OutputFormat = "csv"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// ChangelogReport is a finished changelog run ready to be written.
type ChangelogReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Result      *changelog.Result
}

// ReportWriter writes changelog reports.
type ReportWriter interface {
	Write(report *ChangelogReport, options OutputOptions) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatCI:
		return &CIWriter{}
	case FormatJSON:
		return &JSONWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	case FormatText:
		return &TextWriter{}
	case FormatCSV:
		return &CSVWriter{}
	default:
		return &ConsoleWriter{}
	}
}
