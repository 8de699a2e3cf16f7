package cmd

import (
	logger "netctl2iwd/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "netctl2iwd",
		Short: "Convert netctl wireless profiles to iwd network configurations.",
		Long: `netctl2iwd migrates a host from netctl to iwd by translating each
wireless profile into iwd's per-network configuration format, preserving
the network identity and security credentials.

Passphrases are carried over together with their derived WPA pre-shared
key, so iwd can connect without re-deriving anything. Converted files are
written with owner-only permissions and existing files are never
overwritten.

Run 'netctl2iwd help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
}
