package cmd

import (
	"github.com/dendrascience/dendra-image-compress/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the imgcompress CLI.
// The root command itself performs the compression run; utilities hang off it
// as subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := newCompressCmd()
	rootCmd.Version = version.GetFullVersion()

	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	countCmd := NewCountCmd()
	versionCmd := NewVersionCmd()

	countCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
