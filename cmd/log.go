package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/mkiyama/gitlogview/internal/format"
	"github.com/mkiyama/gitlogview/internal/git"
)

// logAction renders a repository's commit log to stdout. It is the default
// action, so `gitlogview <repo-name>` works without a subcommand.
func logAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing repository name (usage: %s <repo-name> [--oneline])", c.App.Name)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repoPath, err := cfg.ResolveRepo(c.Args().Get(0))
	if err != nil {
		return err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return fmt.Errorf("invalid until date: %w", err)
	}

	reader, err := git.NewLogReader(git.ReadOptions{
		RepoPath:  repoPath,
		Branch:    c.String("branch"),
		Since:     since,
		Until:     until,
		MaxCount:  c.Int("max-count"),
		PathSpecs: c.StringSlice("path"),
	})
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	commits, err := reader.ReadLog(c.Context)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	opts := format.Options{Oneline: c.Bool("oneline")}
	if useColor(c) {
		opts.Palette = format.TerminalPalette()
	}

	if out := format.Log(commits, opts); out != "" {
		fmt.Println(out)
	}
	return nil
}

// useColor reports whether stdout should receive ANSI color.
func useColor(c *cli.Context) bool {
	if c.Bool("no-color") {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
