package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// DefaultBinary is the encoder looked up on PATH when none is configured.
const DefaultBinary = "ffmpeg"

// Quality is the fixed -q:v value passed for every file.
const Quality = "5"

var commandContext = exec.CommandContext

// Result holds the outcome of one encoder invocation.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs an external command to completion and captures its output.
// A non-zero exit is reported in Result, not as an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct{}

// Run starts name with args, waits for it, and returns its exit code with
// stdout and stderr fully buffered. The error is non-nil only when the
// process could not be started or ctx ended it.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := commandContext(ctx, name, args...) //nolint:gosec

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, fmt.Errorf("run %s: %w", name, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, fmt.Errorf("start %s: %w", name, err)
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithBinary overrides the encoder binary name or path.
func WithBinary(binary string) Option {
	return func(e *Encoder) {
		if binary != "" {
			e.binary = binary
		}
	}
}

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(e *Encoder) {
		if r != nil {
			e.runner = r
		}
	}
}

// Encoder recompresses one image into a JPEG through the external binary.
type Encoder struct {
	binary string
	runner Runner
}

// New constructs an Encoder using ffmpeg and ExecRunner unless overridden.
func New(opts ...Option) *Encoder {
	e := &Encoder{binary: DefaultBinary, runner: ExecRunner{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Binary returns the configured encoder binary.
func (e *Encoder) Binary() string {
	return e.binary
}

// Args returns the argument list for converting src into dst.
func (e *Encoder) Args(src, dst string) []string {
	return []string{"-i", src, "-q:v", Quality, dst}
}

// Encode runs the encoder for src and blocks until it exits. There is no
// timeout beyond ctx.
func (e *Encoder) Encode(ctx context.Context, src, dst string) (Result, error) {
	if src == "" {
		return Result{}, errors.New("source path required")
	}
	if dst == "" {
		return Result{}, errors.New("destination path required")
	}
	return e.runner.Run(ctx, e.binary, e.Args(src, dst)...)
}
