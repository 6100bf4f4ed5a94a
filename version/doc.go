// Package version reports build metadata for imgcompress.
//
// Values come from, in order of preference:
//   - Version, Commit and Date injected at link time with -ldflags -X
//   - debug.ReadBuildInfo (module version, vcs.revision, vcs.time)
//   - development defaults
//
// GetFullVersion is what the CLI shows for --version; Fprint backs the
// version subcommand.
package version
