package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/masmgr/git-changelog/config"
	"github.com/masmgr/git-changelog/internal/actions"
	"github.com/masmgr/git-changelog/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "git-changelog",
		Usage:   "Generate a changelog between two git tags",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
			TagsCmd(),
			ConfigCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, generateFlags(true)...),
		Action: generateAction,
		// Errors are reported once by run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// repoFlags are shared by every command that reads history.
func repoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (cli, gogit)",
		},
		&cli.StringFlag{
			Name:  "git",
			Usage: "Git binary used by the cli backend",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns a tag must match (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns that drop a tag (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Show debug output",
		},
	}
}

// getOutputFormat parses the output format flag. An empty value selects
// ci inside GitHub Actions and console elsewhere.
func getOutputFormat(s string, env actions.Environment) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "text", "txt":
		return output.FormatText
	case "ci", "github":
		return output.FormatCI
	case "console":
		return output.FormatConsole
	}
	if env.Actions {
		return output.FormatCI
	}
	return output.FormatConsole
}

// loadConfig loads configuration from file or defaults, then applies
// flag and environment overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if includes := flagStringSlice(c, "include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := flagStringSlice(c, "exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	overrideString(c, "backend", &cfg.Changelog.Backend)
	overrideString(c, "git", &cfg.Changelog.GitBinary)
	overrideString(c, "server-url", &cfg.Changelog.ServerURL)
	overrideString(c, "repository", &cfg.Changelog.Repository)
	overrideString(c, "format", &cfg.Output.Format)
	overrideString(c, "output", &cfg.Output.Path)

	return cfg, nil
}

// overrideString replaces *dst with the named flag's value when the flag
// (or its environment variable) was set to something non-blank.
func overrideString(c *cli.Context, name string, dst *string) {
	lc := setContext(c, name)
	if lc == nil {
		return
	}
	if v := lc.String(name); v != "" {
		*dst = v
	}
}

// setContext returns the innermost context in which name was given, either
// on its command line or through an environment variable. Flags shared by
// the app and a subcommand are defined on both, so looking only at the
// subcommand would drop a value given before the subcommand name.
func setContext(c *cli.Context, name string) *cli.Context {
	for _, lc := range c.Lineage() {
		if lc.Command != nil && lc.IsSet(name) {
			return lc
		}
	}
	return nil
}

func flagString(c *cli.Context, name string) string {
	if lc := setContext(c, name); lc != nil {
		return lc.String(name)
	}
	return c.String(name)
}

func flagStringSlice(c *cli.Context, name string) []string {
	if lc := setContext(c, name); lc != nil {
		return lc.StringSlice(name)
	}
	return c.StringSlice(name)
}

func flagBool(c *cli.Context, name string) bool {
	if lc := setContext(c, name); lc != nil {
		return lc.Bool(name)
	}
	return c.Bool(name)
}

// Run executes the CLI application and exits with its status.
func Run() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run is the single failure boundary: an error or a panic from any command
// is reported through the logger and turned into exit status 1.
func run(args []string, stdout, stderr io.Writer) (code int) {
	env := actions.LoadEnvironment(os.Getenv)
	log := actions.NewLogger(env, stdout, stderr, false)

	defer func() {
		if r := recover(); r != nil {
			log.Error("%s", actions.FailureMessage(r))
			code = 1
		}
	}()

	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(args); err != nil {
		log.Error("%s", actions.FailureMessage(err))
		return 1
	}
	return 0
}
