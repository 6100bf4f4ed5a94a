package cmd

import (
	"github.com/dendrascience/dendra-image-compress/compressor"
	"github.com/dendrascience/dendra-image-compress/encoder"
	"github.com/dendrascience/dendra-image-compress/internal/config"
	"github.com/dendrascience/dendra-image-compress/internal/logging"
	"github.com/spf13/cobra"
)

// newRunner supplies the process runner for the encoder; tests replace it.
var newRunner = func() encoder.Runner { return encoder.ExecRunner{} }

type compressOptions struct {
	inputPath   string
	outputPath  string
	configPath  string
	logLevel    string
	failOnError bool
	lockDir     string
}

func newCompressCmd() *cobra.Command {
	var opts compressOptions

	cmd := &cobra.Command{
		Use:   "imgcompress",
		Short: "Compress all images in a directory with ffmpeg",
		Long: `Compress all images in a directory tree with ffmpeg.

Every .jpg, .jpeg and .png file below the input directory is re-encoded
to a JPEG at the same relative path below the output directory. Names that
do not already end in .jpg get their extension replaced with .jpg. Other
files are skipped with a warning.

Files are processed one at a time. A file the encoder fails on is logged
together with the encoder output, and the run continues with the next one.
When either --input or --output is missing nothing is done.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return runCompress(cmd, opts)
		},
	}

	// RunE prints help once flags are parsed; a parse failure never reaches
	// it, so print help here before reporting the error.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_ = c.Help()
		return err
	})

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "input directory")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output directory")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a TOML configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.failOnError, "fail-on-error", false, "Exit non-zero if any file failed to encode")
	cmd.Flags().StringVar(&opts.lockDir, "lock-dir", "", "Directory for destination lock files (default system temp dir)")

	return cmd
}

func runCompress(cmd *cobra.Command, opts compressOptions) error {
	if opts.inputPath == "" || opts.outputPath == "" {
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("fail-on-error") {
		cfg.FailOnError = opts.failOnError
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, runID := logging.WithRun(logger)
	logger.Debug("Starting run", "id", runID, "encoder", cfg.Encoder)

	enc := encoder.New(
		encoder.WithBinary(cfg.Encoder),
		encoder.WithRunner(newRunner()),
	)
	comp := compressor.New(logger, enc,
		compressor.WithFailOnError(cfg.FailOnError),
		compressor.WithLockDir(opts.lockDir),
	)
	return comp.Run(cmd.Context(), opts.inputPath, opts.outputPath)
}
