package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mkiyama/gitlogview/config"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "gitlogview",
		Usage:     "Render the commit log of repositories under a configured root",
		ArgsUsage: "<repo-name>",
		Version:   "1.0.0",
		Commands: []*cli.Command{
			ServeCmd(),
		},
		Flags:  append(logFlags(), configFlags()...),
		Action: logAction,
	}
}

// configFlags are shared between the log action and the serve command.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.StringFlag{
			Name:  "root",
			Usage: "Directory under which repository names are resolved",
		},
	}
}

// logFlags control how the history is read and rendered.
func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "oneline",
			Usage: "Condensed one-line-per-commit output",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to walk (default: HEAD)",
		},
		&cli.IntFlag{
			Name:    "max-count",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits to show",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Show commits since this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Show commits until this date (YYYY-MM-DD)",
		},
		&cli.StringSliceFlag{
			Name:  "path",
			Usage: "Glob pattern; show only commits touching a matching path (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if root := c.String("root"); root != "" {
		cfg.RootDir = root
	}
	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
