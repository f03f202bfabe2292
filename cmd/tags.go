package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// TagsCmd returns the tags command.
func TagsCmd() *cli.Command {
	return &cli.Command{
		Name:   "tags",
		Usage:  "List tags in version order after include/exclude filters",
		Flags:  repoFlags(),
		Action: tagsAction,
	}
}

func tagsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	tags, err := ctx.Reader.Tags(c.Context)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		ctx.Logger.Warning("No tags found in repository")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(c.App.Writer, tag)
	}
	return nil
}
