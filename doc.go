// Package main provides the imgcompress command-line interface.
//
// imgcompress walks a source directory, re-encodes every .jpg, .jpeg and .png
// file to a JPEG with ffmpeg (-q:v 5), and writes the result at the same
// relative path below a destination directory. Other files are skipped with a
// warning and a failed encode never stops the run.
//
//	imgcompress -i photos/ -o photos-small/
//
// Subcommands:
//   - count: Count images and skipped files in a directory tree
//   - version: Print build metadata
package main
