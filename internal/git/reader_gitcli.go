package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// LogDelimiter separates the fields of one formatted git log entry.
// It is chosen so that it does not occur in author names or subjects.
const LogDelimiter = "<<GIT_LOG_DELIMITER>>"

// logFormat renders each commit as <abbrev-hash><D><author-name><D><subject>.
const logFormat = "%h" + LogDelimiter + "%an" + LogDelimiter + "%s"

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CLIReader reads tags and commits by invoking the git executable.
type CLIReader struct {
	opts ReadOptions
	run  Runner
}

// NewCLIReader creates a reader that shells out to git.
func NewCLIReader(opts ReadOptions) *CLIReader {
	return &CLIReader{opts: opts, run: execRunner}
}

// WithRunner replaces the subprocess runner, typically with a test double.
func (r *CLIReader) WithRunner(run Runner) *CLIReader {
	r.run = run
	return r
}

// Tags lists all tags using git's version-aware sort.
func (r *CLIReader) Tags(ctx context.Context) ([]string, error) {
	out, err := r.git(ctx, "tag", "--list", "--sort=version:refname")
	if err != nil {
		return nil, err
	}
	return filterTags(parseTagList(out), r.opts.Include, r.opts.Exclude)
}

// CommitsBetween runs git log over from..to, or over all of to when from is empty.
// Revisions are passed after --end-of-options and before "--" so a tag can
// never be read as an option or a path.
func (r *CLIReader) CommitsBetween(ctx context.Context, from, to string) ([]Commit, error) {
	if err := validateRevisions(from, to); err != nil {
		return nil, err
	}
	out, err := r.git(ctx, "log", "--format="+logFormat, "--end-of-options", revisionRange(from, to), "--")
	if err != nil {
		return nil, err
	}
	return parseCommitLog(out), nil
}

func (r *CLIReader) git(ctx context.Context, args ...string) (string, error) {
	bin := r.opts.GitBinary
	if bin == "" {
		bin = "git"
	}

	full := args
	if r.opts.RepoPath != "" {
		full = append([]string{"-C", r.opts.RepoPath}, args...)
	}

	logDebug("[git] %s %s", bin, strings.Join(full, " "))

	out, err := r.run(ctx, bin, full...)
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// validateRevisions rejects revisions git would parse as options.
func validateRevisions(revs ...string) error {
	for _, rev := range revs {
		if strings.HasPrefix(rev, "-") {
			return fmt.Errorf("invalid revision %q: must not start with '-'", rev)
		}
	}
	return nil
}

func revisionRange(from, to string) string {
	if from == "" {
		return to
	}
	return from + ".." + to
}

// parseTagList splits newline-separated tag names, dropping blank lines.
// The backend's order is kept as is.
func parseTagList(out string) []string {
	tags := []string{}
	for _, line := range strings.Split(out, "\n") {
		tag := strings.TrimSpace(line)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// parseCommitLog converts delimited git log output into commits, newest first.
func parseCommitLog(out string) []Commit {
	commits := []Commit{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		commits = append(commits, parseCommitLine(line))
	}
	return commits
}

// parseCommitLine splits one entry into hash, author and message.
// Missing trailing fields are left empty; a delimiter inside the subject
// stays part of the message.
func parseCommitLine(line string) Commit {
	fields := strings.SplitN(line, LogDelimiter, 3)
	for len(fields) < 3 {
		fields = append(fields, "")
	}
	return Commit{
		Hash:    fields[0],
		Author:  fields[1],
		Message: fields[2],
	}
}
