package cmd

import (
	"os"

	"github.com/masmgr/git-changelog/config"
	"github.com/masmgr/git-changelog/internal/actions"
	"github.com/masmgr/git-changelog/internal/git"
	"github.com/masmgr/git-changelog/internal/output"
	"github.com/urfave/cli/v2"
)

// newReader builds the history reader; tests replace it with a mock.
var newReader = git.NewReader

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config   *config.Config
	Env      actions.Environment
	Logger   actions.Logger
	RepoPath string
	Reader   git.HistoryReader
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, logger setup and repository opening.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	env := actions.LoadEnvironment(os.Getenv)
	logger := actions.NewLogger(env, c.App.Writer, c.App.ErrWriter, flagBool(c, "verbose"))
	git.SetDebugLogger(logger.Debug)

	backend, err := git.ParseBackend(cfg.Changelog.Backend)
	if err != nil {
		return nil, err
	}

	repoPath := flagString(c, "repo")
	reader, err := newReader(backend, git.ReadOptions{
		RepoPath:  repoPath,
		GitBinary: cfg.Changelog.GitBinary,
		Include:   cfg.Filters.Include,
		Exclude:   cfg.Filters.Exclude,
	})
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:   cfg,
		Env:      env,
		Logger:   logger,
		RepoPath: repoPath,
		Reader:   reader,
	}, nil
}

// OutputOptions resolves the output format and destination. The ci format
// falls back to $GITHUB_OUTPUT when no path was given.
func (ctx *CommandContext) OutputOptions() output.OutputOptions {
	format := getOutputFormat(ctx.Config.Output.Format, ctx.Env)
	path := ctx.Config.Output.Path
	if path == "" && format == output.FormatCI {
		path = ctx.Env.OutputPath
	}
	return output.OutputOptions{
		Format:     format,
		OutputPath: path,
	}
}
