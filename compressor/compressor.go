package compressor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dendrascience/dendra-image-compress/encoder"
	"github.com/dendrascience/dendra-image-compress/util"
)

// ErrEncodeFailed is returned by Run, when fail-on-error is enabled, if at
// least one file could not be encoded.
var ErrEncodeFailed = errors.New("one or more files failed to encode")

// Option configures a Compressor.
type Option func(*Compressor)

// WithLockDir sets where destination lock files are created. The default is
// os.TempDir().
func WithLockDir(dir string) Option {
	return func(c *Compressor) {
		c.lockDir = dir
	}
}

// WithFailOnError makes Run return ErrEncodeFailed when any file failed.
func WithFailOnError(enabled bool) Option {
	return func(c *Compressor) {
		c.failOnError = enabled
	}
}

// Compressor mirrors a source image tree into a tree of JPEG copies.
type Compressor struct {
	logger      *log.Logger
	encoder     *encoder.Encoder
	lockDir     string
	failOnError bool
}

// New returns a Compressor logging to logger and encoding with enc.
func New(logger *log.Logger, enc *encoder.Encoder, opts ...Option) *Compressor {
	c := &Compressor{logger: logger, encoder: enc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run processes every file below src into dst.
//
// A missing src or dst argument is a silent no-op. A src that does not exist
// or is not a directory is logged and Run returns nil. Per-file encode
// failures never stop the run.
// Filesystem errors while walking or creating directories are returned.
func (c *Compressor) Run(ctx context.Context, src, dst string) error {
	if src == "" || dst == "" {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Error("Source directory does not exist", "path", src)
			return nil
		}
		return err
	}
	if !info.IsDir() {
		c.logger.Error("Source is not a directory", "path", src)
		return nil
	}

	if util.PathsOverlap(src, dst) {
		c.logger.Error("Destination must not overlap the source directory", "src", src, "dst", dst)
		return fmt.Errorf("%s and %s: %w", src, dst, util.ErrPathsOverlap)
	}

	if err := c.prepareDestination(dst); err != nil {
		return err
	}

	lock, err := util.LockDestination(c.lockDir, dst)
	if err != nil {
		if errors.Is(err, util.ErrDestinationLocked) {
			c.logger.Error("Destination is in use by another run", "path", dst)
		}
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			c.logger.Warn("Failed to release destination lock", "path", lock.Path(), "err", err)
		}
	}()

	failed := false
	for path, err := range util.Walk(src) {
		if err != nil {
			return fmt.Errorf("walk %s: %w", src, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := c.Process(ctx, src, dst, path)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}

	if failed && c.failOnError {
		return ErrEncodeFailed
	}
	return nil
}

func (c *Compressor) prepareDestination(dst string) error {
	info, err := os.Stat(dst)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%s: %w", dst, util.ErrExpectedDirectory)
		}
		c.logger.Info("Destination directory already exists", "path", dst)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	c.logger.Info("Creating destination directory", "path", dst)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	return nil
}

// Process handles one walked path. It reports false only when the encoder
// ran and exited non-zero; skipped files count as handled. The returned
// error is reserved for failures that should end the run.
func (c *Compressor) Process(ctx context.Context, src, dst, path string) (bool, error) {
	name := filepath.Base(path)
	if !util.IsImage(name) {
		c.logger.Warn("Skipping non-image file", "file", name)
		return true, nil
	}
	c.logger.Info("Found image file", "path", path)

	task, err := util.NewFileTask(src, dst, path)
	if err != nil {
		return false, err
	}
	c.logger.Info("Relative path", "path", task.Relative)
	c.logger.Info("Destination file path", "path", task.Destination)

	created, err := util.MaterializeDir(task.DestinationDir())
	if err != nil {
		return false, err
	}
	if created {
		c.logger.Info("Creating destination sub-directory", "path", task.DestinationDir())
	}

	return c.encode(ctx, task)
}

func (c *Compressor) encode(ctx context.Context, task util.FileTask) (bool, error) {
	c.logger.Info("Compressing",
		"src", task.Source,
		"dst", task.Destination,
		"args", c.encoder.Args(task.Source, task.Destination),
	)
	res, err := c.encoder.Encode(ctx, task.Source, task.Destination)
	if err != nil {
		return false, err
	}
	if !res.Success() {
		c.logger.Error("Error compressing",
			"src", task.Source,
			"dst", task.Destination,
			"code", res.ExitCode,
		)
		c.logger.Error("Encoder output",
			"stdout", string(res.Stdout),
			"stderr", string(res.Stderr),
		)
		return false, nil
	}
	c.logger.Info("Successfully compressed", "src", task.Source, "dst", task.Destination)
	return true, nil
}
