package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileTask is the unit of work for one discovered image.
type FileTask struct {
	// Source is the path of the image as found by Walk.
	Source string
	// Relative is Source relative to the source root.
	Relative string
	// Destination is the mirrored output path with a .jpg name.
	Destination string
}

// NewFileTask maps path, found below srcRoot, to its mirrored location below
// dstRoot. The relative directory is kept verbatim and only the final
// component is normalized with NormalizeName.
func NewFileTask(srcRoot, dstRoot, path string) (FileTask, error) {
	rel, err := filepath.Rel(srcRoot, path)
	if err != nil {
		return FileTask{}, fmt.Errorf("failed to get relative path for %s: %w", path, err)
	}
	dir, name := filepath.Split(rel)
	return FileTask{
		Source:      path,
		Relative:    rel,
		Destination: filepath.Join(dstRoot, dir, NormalizeName(name)),
	}, nil
}

// DestinationDir returns the directory the destination file is written into.
func (t FileTask) DestinationDir() string {
	return filepath.Dir(t.Destination)
}

// MaterializeDir makes sure dir exists, creating missing parents. It reports
// whether anything had to be created; calling it on an existing directory is
// a no-op.
func MaterializeDir(dir string) (created bool, err error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%s: %w", dir, ErrExpectedDirectory)
		}
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return true, nil
}

// PathsOverlap reports whether one of the two paths is, or lies inside, the
// other. Relative paths are resolved against the working directory first.
func PathsOverlap(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return false
	}
	return within(abs1, abs2) || within(abs2, abs1)
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
