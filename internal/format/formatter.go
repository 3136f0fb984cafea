package format

import (
	"strings"

	"github.com/mkiyama/gitlogview/internal/git"
)

// Options control how a commit history is rendered.
type Options struct {
	Oneline bool
	Palette Palette
}

const (
	// dateLayout matches git's default log date rendering, with the
	// timezone shown as an abbreviation.
	dateLayout = "Mon Jan 2 15:04:05 2006 MST"

	messageIndent = "    "
)

// Log renders a commit history in git-log style. Commits are rendered in
// the order given; an empty history renders as an empty string.
func Log(commits []git.Commit, opts Options) string {
	if opts.Oneline {
		return oneline(commits, opts.Palette)
	}
	return verbose(commits, opts.Palette)
}

// oneline renders one row per commit: the 7-character short identifier,
// a space, and the first line of the message. Rows are joined with a
// single newline, so the result carries no trailing newline.
func oneline(commits []git.Commit, p Palette) string {
	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, p.paint(p.Hash, c.ShortSHA())+" "+p.paint(p.Message, c.Summary()))
	}
	return strings.Join(lines, "\n")
}

// verbose renders the full block per commit: identifier, author, date, a
// blank line, and the trimmed message indented once by four spaces. The
// message keeps its inner line breaks as-is; only the first line gains
// the indent. Each block ends with a blank line separating it from the next.
func verbose(commits []git.Commit, p Palette) string {
	if len(commits) == 0 {
		return ""
	}

	lines := make([]string, 0, 6*len(commits))
	for _, c := range commits {
		lines = append(lines,
			"commit "+p.paint(p.Hash, c.SHA),
			"Author: "+p.paint(p.Author, c.Author.Name+" <"+c.Author.Email+">"),
			"Date:   "+p.paint(p.Date, c.When.Local().Format(dateLayout)),
			"",
			messageIndent+p.paint(p.Message, strings.TrimSpace(c.Message)),
			"",
		)
	}
	return strings.Join(lines, "\n")
}
