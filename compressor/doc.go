// Package compressor drives a single compression run over a source tree.
//
// A run walks the source directory, skips anything that is not a .jpg, .jpeg
// or .png file, mirrors each image's relative path under the destination
// directory with a .jpg name, and hands the pair to the encoder. Files are
// processed strictly one after another; a failed encode is logged and the
// run moves on to the next file.
//
// The logger and the encoder are injected through New, so a run carries no
// global state and can be observed completely in tests.
package compressor
