package format

import (
	"strings"
	"testing"
	"time"

	"github.com/mkiyama/gitlogview/internal/git"
)

func testCommit() git.Commit {
	return git.Commit{
		SHA:     "abc1234def5678901234567890123456789012ab",
		When:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Author:  git.AuthorInfo{Name: "Test Author", Email: "test@example.com"},
		Message: "Initial commit\n",
	}
}

func TestLog_Oneline_SingleCommit(t *testing.T) {
	got := Log([]git.Commit{testCommit()}, Options{Oneline: true})
	if got != "abc1234 Initial commit" {
		t.Errorf("Log() = %q, expected %q", got, "abc1234 Initial commit")
	}
}

func TestLog_Oneline_OrderPreserved(t *testing.T) {
	commits := []git.Commit{
		{SHA: "bbbbbbb000000000000000000000000000000000", Message: "newest"},
		{SHA: "aaaaaaa000000000000000000000000000000000", Message: "oldest"},
	}
	got := Log(commits, Options{Oneline: true})
	expected := "bbbbbbb newest\naaaaaaa oldest"
	if got != expected {
		t.Errorf("Log() = %q, expected %q", got, expected)
	}
}

func TestLog_Oneline_FirstLineOnly(t *testing.T) {
	c := testCommit()
	c.Message = "Subject line\n\nLonger body text\nspread over lines\n"
	got := Log([]git.Commit{c}, Options{Oneline: true})
	if got != "abc1234 Subject line" {
		t.Errorf("Log() = %q, expected %q", got, "abc1234 Subject line")
	}
}

func TestLog_Empty(t *testing.T) {
	tests := []struct {
		name    string
		commits []git.Commit
		oneline bool
	}{
		{name: "Nil oneline", commits: nil, oneline: true},
		{name: "Nil verbose", commits: nil, oneline: false},
		{name: "Empty oneline", commits: []git.Commit{}, oneline: true},
		{name: "Empty verbose", commits: []git.Commit{}, oneline: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Log(tt.commits, Options{Oneline: tt.oneline}); got != "" {
				t.Errorf("Log() = %q, expected empty string", got)
			}
		})
	}
}

func TestLog_Verbose_Structure(t *testing.T) {
	c := testCommit()
	got := Log([]git.Commit{c}, Options{})
	lines := strings.Split(got, "\n")

	if len(lines) != 6 {
		t.Fatalf("got %d lines, expected 6: %q", len(lines), got)
	}
	if lines[0] != "commit abc1234def5678901234567890123456789012ab" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Author: Test Author <test@example.com>" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Date:   ") {
		t.Errorf("line 2 = %q, expected Date prefix", lines[2])
	}
	if lines[3] != "" {
		t.Errorf("line 3 = %q, expected empty", lines[3])
	}
	if lines[4] != "    Initial commit" {
		t.Errorf("line 4 = %q", lines[4])
	}
	if lines[5] != "" {
		t.Errorf("line 5 = %q, expected empty", lines[5])
	}

	if n := strings.Count(got, "commit "+c.SHA); n != 1 {
		t.Errorf("full identifier appears %d times, expected 1", n)
	}
}

func TestLog_Verbose_DateRoundTrips(t *testing.T) {
	c := testCommit()
	got := Log([]git.Commit{c}, Options{})
	lines := strings.Split(got, "\n")

	rendered := strings.TrimPrefix(lines[2], "Date:   ")
	parsed, err := time.ParseInLocation("Mon Jan 2 15:04:05 2006 MST", rendered, time.Local)
	if err != nil {
		t.Fatalf("date %q did not parse: %v", rendered, err)
	}
	if parsed.Unix() != c.When.Unix() {
		t.Errorf("parsed date %v (unix %d) != commit time %v (unix %d)",
			parsed, parsed.Unix(), c.When, c.When.Unix())
	}
}

func TestLog_Verbose_MultiLineMessage(t *testing.T) {
	c := testCommit()
	c.Message = "  Subject line\n\nBody one\nBody two\n\n"
	got := Log([]git.Commit{c}, Options{})

	if !strings.Contains(got, "    Subject line\n\nBody one\nBody two\n") {
		t.Errorf("inner message lines should not be re-indented:\n%s", got)
	}
	if strings.Contains(got, "    Body one") {
		t.Errorf("body line was indented:\n%s", got)
	}
}

func TestLog_Verbose_BlockSeparation(t *testing.T) {
	a := testCommit()
	b := testCommit()
	b.SHA = "def5678000000000000000000000000000000000"
	b.Message = "Second change"

	got := Log([]git.Commit{a, b}, Options{})

	idx := strings.Index(got, "\n\ncommit def5678")
	if idx == -1 {
		t.Fatalf("blocks are not separated by a blank line:\n%s", got)
	}
	if strings.Index(got, "commit abc1234") > strings.Index(got, "commit def5678") {
		t.Error("block order does not match input order")
	}
}

func TestLog_ColoredOutput(t *testing.T) {
	c := testCommit()

	plain := Log([]git.Commit{c}, Options{Oneline: true})
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("zero-value palette emitted escape codes: %q", plain)
	}

	colored := Log([]git.Commit{c}, Options{Oneline: true, Palette: TerminalPalette().Forced()})
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("forced palette emitted no escape codes: %q", colored)
	}
	if !strings.Contains(colored, "abc1234") || !strings.Contains(colored, "Initial commit") {
		t.Errorf("colored output lost content: %q", colored)
	}
}

func TestLog_ColoredVerbose(t *testing.T) {
	c := testCommit()
	got := Log([]git.Commit{c}, Options{Palette: TerminalPalette().Forced()})

	for _, want := range []string{"commit ", "Author: ", "Date:   ", c.SHA, "Test Author", "test@example.com"} {
		if !strings.Contains(got, want) {
			t.Errorf("colored verbose output missing %q:\n%q", want, got)
		}
	}
}
