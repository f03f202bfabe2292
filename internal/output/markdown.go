package output

// MarkdownWriter writes the markdown log, ready to paste into release notes.
type MarkdownWriter struct{}

// Write outputs the markdown log.
func (w *MarkdownWriter) Write(report *ChangelogReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return writeBody(out, report.Result.MarkdownLog)
}

// TextWriter writes the plain-text log.
type TextWriter struct{}

// Write outputs the plain-text log.
func (w *TextWriter) Write(report *ChangelogReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return writeBody(out, report.Result.Log)
}
