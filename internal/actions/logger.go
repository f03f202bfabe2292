package actions

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Logger is the logging surface the changelog builder reports through.
type Logger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// Compile-time interface conformance checks.
var (
	_ Logger = (*WorkflowLogger)(nil)
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*RecordingLogger)(nil)
)

// NewLogger returns a WorkflowLogger inside GitHub Actions and a
// ConsoleLogger everywhere else.
func NewLogger(env Environment, stdout, stderr io.Writer, verbose bool) Logger {
	if env.Actions {
		return NewWorkflowLogger(stdout)
	}
	return NewConsoleLogger(stdout, stderr, verbose || env.RunnerDebug)
}

// WorkflowLogger writes GitHub Actions workflow commands.
// The runner decides whether debug lines are shown.
type WorkflowLogger struct {
	w io.Writer
}

// NewWorkflowLogger creates a logger writing workflow commands to w.
func NewWorkflowLogger(w io.Writer) *WorkflowLogger {
	return &WorkflowLogger{w: w}
}

func (l *WorkflowLogger) Info(format string, args ...any) {
	fmt.Fprintln(l.w, fmt.Sprintf(format, args...))
}

func (l *WorkflowLogger) Debug(format string, args ...any) {
	l.command("debug", fmt.Sprintf(format, args...))
}

func (l *WorkflowLogger) Warning(format string, args ...any) {
	l.command("warning", fmt.Sprintf(format, args...))
}

func (l *WorkflowLogger) Error(format string, args ...any) {
	l.command("error", fmt.Sprintf(format, args...))
}

func (l *WorkflowLogger) command(name, message string) {
	fmt.Fprintf(l.w, "::%s::%s\n", name, escapeData(message))
}

// escapeData encodes a workflow command payload so multi-line messages
// survive as a single command.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

var (
	warningLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	debugText    = color.New(color.Faint).SprintFunc()
)

// ConsoleLogger writes colored messages for interactive use.
// Info goes to stdout, everything else to stderr; debug lines only when verbose.
type ConsoleLogger struct {
	out     io.Writer
	err     io.Writer
	verbose bool
}

// NewConsoleLogger creates a console logger.
func NewConsoleLogger(out, err io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{out: out, err: err, verbose: verbose}
}

func (l *ConsoleLogger) Info(format string, args ...any) {
	fmt.Fprintln(l.out, fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(l.err, debugText(fmt.Sprintf(format, args...)))
}

func (l *ConsoleLogger) Warning(format string, args ...any) {
	fmt.Fprintf(l.err, "%s %s\n", warningLabel("warning:"), fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Error(format string, args ...any) {
	fmt.Fprintf(l.err, "%s %s\n", errorLabel("error:"), fmt.Sprintf(format, args...))
}

// Entry is one message captured by a RecordingLogger.
type Entry struct {
	Level   string
	Message string
}

// RecordingLogger keeps every message in memory. It is meant for tests.
type RecordingLogger struct {
	Entries []Entry
}

func (l *RecordingLogger) Info(format string, args ...any) {
	l.record("info", format, args)
}

func (l *RecordingLogger) Debug(format string, args ...any) {
	l.record("debug", format, args)
}

func (l *RecordingLogger) Warning(format string, args ...any) {
	l.record("warning", format, args)
}

func (l *RecordingLogger) Error(format string, args ...any) {
	l.record("error", format, args)
}

// Messages returns the messages logged at the given level, in order.
func (l *RecordingLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *RecordingLogger) record(level, format string, args []any) {
	l.Entries = append(l.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}
