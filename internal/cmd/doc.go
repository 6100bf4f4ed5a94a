// Package cmd provides the command-line interface implementation for imgcompress.
//
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: runs a compression pass from --input into --output
//   - count: counts images and skipped files in a directory tree
//   - version: prints build metadata
//
// The root command always prints its help text before doing anything else,
// and does nothing more when either --input or --output is missing.
//
// The heavy lifting lives in the compressor, encoder and util packages; this
// package only wires flags, configuration and logging together.
package cmd
