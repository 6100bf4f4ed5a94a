// Package encoder runs the external image encoder for a single file.
//
// The encoder is a black box invoked as
//
//	<binary> -i <source> -q:v 5 <destination>
//
// and only its exit code and captured output are inspected. Process
// execution sits behind the Runner interface so callers and tests can swap
// in a fake without a real ffmpeg on the PATH.
package encoder
