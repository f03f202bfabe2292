package cmd

import (
	"time"

	"github.com/masmgr/git-changelog/internal/actions"
	"github.com/masmgr/git-changelog/internal/changelog"
	"github.com/masmgr/git-changelog/internal/output"
	"github.com/urfave/cli/v2"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate the changelog between two tags",
		Flags:   generateFlags(false),
		Action:  generateAction,
	}
}

// generateFlags returns the generate flags. Environment fallbacks are bound
// only on the app so a subcommand flag is set only when given explicitly.
func generateFlags(withEnv bool) []cli.Flag {
	env := func(names ...string) []string {
		if !withEnv {
			return nil
		}
		return names
	}
	return append(repoFlags(),
		&cli.StringFlag{
			Name:    "from-tag",
			Usage:   "Tag the changelog starts after (default: second-to-last tag)",
			EnvVars: env(actions.InputEnv(actions.InputFromTag)),
		},
		&cli.StringFlag{
			Name:    "to-tag",
			Usage:   "Tag the changelog ends at (default: latest tag)",
			EnvVars: env(actions.InputEnv(actions.InputToTag)),
		},
		&cli.StringFlag{
			Name:    "server-url",
			Usage:   "Base URL commit links point to",
			EnvVars: env(actions.EnvServerURL),
		},
		&cli.StringFlag{
			Name:    "repository",
			Usage:   "Repository (owner/name) commit links point to",
			EnvVars: env(actions.EnvRepository),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (ci, console, json, markdown, text, csv)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: $GITHUB_OUTPUT for ci, stdout otherwise)",
		},
	)
}

func generateAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	builder := changelog.NewBuilder(ctx.Reader, ctx.Logger)
	result, err := builder.Build(c.Context, changelog.Options{
		FromTag:    flagString(c, "from-tag"),
		ToTag:      flagString(c, "to-tag"),
		ServerURL:  ctx.Config.Changelog.ServerURL,
		Repository: ctx.Config.Changelog.Repository,
	})
	if err != nil {
		return err
	}

	report := &output.ChangelogReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Result:      result,
	}

	opts := ctx.OutputOptions()
	return output.NewReportWriter(opts.Format).Write(report, opts)
}
