package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the netctl2iwd version",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewFigure("netctl2iwd", "", true)
		banner.Print()
		fmt.Printf("\nversion %s\n", Version)
	},
}
