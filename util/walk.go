package util

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// errStopWalk unwinds filepath.WalkDir when the consumer stops ranging.
var errStopWalk = errors.New("walk stopped")

// Walk returns a lazy sequence of every non-directory entry below root,
// depth first, in the order filepath.WalkDir visits them. Each range over the
// sequence walks the tree again.
//
// Symlinks to directories are skipped, not followed. Other symlinks,
// dangling ones included, are yielded like any other file. A traversal error
// is yielded once as ("", err) and ends the sequence.
func Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 {
				if info, err := os.Stat(path); err == nil && info.IsDir() {
					return nil
				}
			}
			if !yield(path, nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", err)
		}
	}
}
