// Package git reads file contents from a repository's committed tree.
package git

import (
	"errors"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNoHead is returned for a repository without commits.
var ErrNoHead = errors.New("repository has no HEAD commit")

// FileFunc receives a committed file's path, size and a reader for its
// contents. Returning an error stops iteration.
type FileFunc func(path string, size int64, read func() ([]byte, error)) error

// HeadFiles calls fn for each regular file in the HEAD commit tree of the
// repository containing root. Symlinks and submodules are skipped.
func HeadFiles(root string, fn FileFunc) error {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("open repository %s: %w", root, err)
	}
	ref, err := repo.Head()
	if err != nil {
		return fmt.Errorf("%s: %w: %v", root, ErrNoHead, err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return fmt.Errorf("load commit %s: %w", ref.Hash(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("load tree %s: %w", ref.Hash(), err)
	}
	return tree.Files().ForEach(func(f *object.File) error {
		if f.Mode != filemode.Regular && f.Mode != filemode.Executable {
			return nil
		}
		return fn(f.Name, f.Size, func() ([]byte, error) { return readBlob(f) })
	})
}

func readBlob(f *object.File) ([]byte, error) {
	r, err := f.Reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
