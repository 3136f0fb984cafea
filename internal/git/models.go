package git

import (
	"strings"
	"time"
)

// Commit represents a single commit in a repository's history.
type Commit struct {
	SHA     string
	When    time.Time
	Author  AuthorInfo
	Message string
}

// ShortSHA returns the abbreviated 7-character commit identifier.
func (c Commit) ShortSHA() string {
	if len(c.SHA) < 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// Summary returns the first line of the commit message, without a
// trailing carriage return.
func (c Commit) Summary() string {
	msg := c.Message
	if idx := strings.IndexByte(msg, '\n'); idx != -1 {
		msg = msg[:idx]
	}
	return strings.TrimSuffix(msg, "\r")
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ReadOptions configures the log reader.
type ReadOptions struct {
	RepoPath  string
	Branch    string // Branch or revision to walk from; empty means HEAD
	Since     *time.Time
	Until     *time.Time
	MaxCount  int      // Maximum number of commits to return; 0 means unlimited
	PathSpecs []string // Glob patterns; a commit must touch a matching path
}
