package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixedDelimiter(t *testing.T, d string) {
	t.Helper()
	orig := newDelimiter
	newDelimiter = func() (string, error) { return d, nil }
	t.Cleanup(func() { newDelimiter = orig })
}

func TestCIWriter_WritesAllOutputs(t *testing.T) {
	fixedDelimiter(t, "EOF_X")
	report := sampleReport()

	got := writeToTempFile(t, &CIWriter{}, report, FormatCI)

	want := "previousTag<<EOF_X\nv1.0.0\nEOF_X\n" +
		"latestTag<<EOF_X\nv1.1.0\nEOF_X\n" +
		"log<<EOF_X\n" + report.Result.Log + "\nEOF_X\n" +
		"markdownLog<<EOF_X\n" + report.Result.MarkdownLog + "\nEOF_X\n"
	if got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCIWriter_EmptyResultStillWritesOutputs(t *testing.T) {
	fixedDelimiter(t, "D")

	got := writeToTempFile(t, &CIWriter{}, emptyReport(), FormatCI)

	for _, name := range []string{OutputPreviousTag, OutputLatestTag, OutputLog, OutputMarkdownLog} {
		if !strings.Contains(got, name+"<<D\n\nD\n") {
			t.Errorf("expected empty %s output, got:\n%s", name, got)
		}
	}
}

func TestCIWriter_Appends(t *testing.T) {
	fixedDelimiter(t, "D")
	path := filepath.Join(t.TempDir(), "github_output")
	if err := os.WriteFile(path, []byte("existing=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (&CIWriter{}).Write(emptyReport(), OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "existing=1\npreviousTag<<D\n") {
		t.Errorf("expected appended output, got:\n%s", data)
	}
}

func TestCIWriter_RejectsDelimiterInValue(t *testing.T) {
	fixedDelimiter(t, "v1")
	report := sampleReport()
	path := filepath.Join(t.TempDir(), "out")

	err := (&CIWriter{}).Write(report, OutputOptions{OutputPath: path})
	if err == nil {
		t.Fatal("expected error when a value contains the delimiter")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("nothing should be written when a value is rejected")
	}
}

func TestCIWriter_StdoutFallback(t *testing.T) {
	fixedDelimiter(t, "D")
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })

	if err := (&CIWriter{}).Write(sampleReport(), OutputOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "previousTag<<D\nv1.0.0\nD\n") {
		t.Errorf("unexpected stdout output:\n%s", buf.String())
	}
}

func TestNewDelimiter_Random(t *testing.T) {
	a, err := newDelimiter()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := newDelimiter()
	if a == b {
		t.Error("expected distinct delimiters")
	}
	if !strings.HasPrefix(a, "ghadelimiter_") {
		t.Errorf("delimiter = %q", a)
	}
}
