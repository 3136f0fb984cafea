package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkiyama/gitlogview/internal/format"
	"github.com/mkiyama/gitlogview/internal/git"
)

const usageBanner = `gitlogview - git log over HTTP

GET /<repo>          terminal view of a repository's history
GET /api/<repo>      plain-text log

API query parameters:
  oneline            condensed one-line-per-commit form
  color              ANSI-colored output
  n=<count>          limit the number of commits
  branch=<name>      walk from a branch instead of HEAD
`

func (s *Server) handleUsage(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(usageBanner))
}

func (s *Server) handleLog(c *gin.Context) {
	name := c.Param("repo")

	repoPath, err := s.cfg.ResolveRepo(name)
	if err != nil {
		c.String(http.StatusNotFound, "Error: %v", err)
		return
	}

	opts := git.ReadOptions{
		RepoPath: repoPath,
		Branch:   c.Query("branch"),
	}
	if n := c.Query("n"); n != "" {
		count, err := strconv.Atoi(n)
		if err != nil || count < 0 {
			c.String(http.StatusBadRequest, "Error: invalid commit count %q", n)
			return
		}
		opts.MaxCount = count
	}

	reader, err := git.NewLogReader(opts)
	if err != nil {
		s.log.WithFields(logrus.Fields{"repo": name, "err": err}).Warn("open failed")
		c.String(http.StatusNotFound, "Error: %v", err)
		return
	}

	commits, err := reader.ReadLog(c.Request.Context())
	if err != nil {
		s.log.WithFields(logrus.Fields{"repo": name, "err": err}).Warn("read failed")
		c.String(http.StatusNotFound, "Error: %v", err)
		return
	}

	_, oneline := c.GetQuery("oneline")
	formatOpts := format.Options{Oneline: oneline}
	if _, colored := c.GetQuery("color"); colored {
		formatOpts.Palette = format.TerminalPalette().Forced()
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(format.Log(commits, formatOpts)))
}
