package git

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// LogReader reads commit history from a Git repository.
type LogReader struct {
	repo *gogit.Repository
	opts ReadOptions
}

// NewLogReader opens the repository at opts.RepoPath and prepares a reader.
func NewLogReader(opts ReadOptions) (*LogReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &LogReader{repo: repo, opts: opts}, nil
}

// ReadLog walks the commit history from the configured start revision and
// returns the commits newest first, in walk order.
func (r *LogReader) ReadLog(ctx context.Context) ([]Commit, error) {
	from, err := r.startHash()
	if err != nil {
		return nil, err
	}

	logOpts := &gogit.LogOptions{From: from}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	var results []Commit

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if len(r.opts.PathSpecs) > 0 {
			matched, err := r.touchesPathSpec(c)
			if err != nil {
				return err
			}
			if !matched {
				return nil
			}
		}

		results = append(results, Commit{
			SHA:     c.Hash.String(),
			When:    c.Author.When,
			Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
			Message: c.Message,
		})

		if r.opts.MaxCount > 0 && len(results) >= r.opts.MaxCount {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// startHash resolves the revision the walk starts from.
func (r *LogReader) startHash() (plumbing.Hash, error) {
	if r.opts.Branch != "" {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(r.opts.Branch))
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return *hash, nil
	}
	ref, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}

// touchesPathSpec reports whether the commit changed any path matching the
// configured glob patterns.
func (r *LogReader) touchesPathSpec(c *object.Commit) (bool, error) {
	stats, err := c.Stats()
	if err != nil {
		return false, err
	}
	for _, stat := range stats {
		path := strings.ReplaceAll(stat.Name, "\\", "/")
		for _, pattern := range r.opts.PathSpecs {
			matched, err := doublestar.Match(pattern, path)
			if err != nil {
				return false, err
			}
			if matched {
				return true, nil
			}
		}
	}
	return false, nil
}
