package cmd

import (
	"fmt"
	"os"

	"netctl2iwd/internal/netctl"
	"netctl2iwd/internal/network"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <profile>...",
	Short: "Show what a netctl profile would convert into, without writing",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")

		files, err := netctl.ResolveInputs(args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to resolve profile paths: %v", err)
		}

		for _, file := range files {
			in, err := os.Open(file)
			if err != nil {
				fmt.Printf("%s %s: %v\n", color.RedString("✗"), file, err)
				continue
			}
			n, err := netctl.ParseProfile(in)
			in.Close()
			if err != nil {
				fmt.Printf("%s %s: %v\n", color.RedString("✗"), file, err)
				continue
			}

			fmt.Printf("%s %s\n", color.GreenString("✓"), file)
			fmt.Printf("  SSID:     %s\n", n.SSID)
			fmt.Printf("  Security: %s\n", securityLabel(n.Security))
			fmt.Printf("  Writes:   %s\n", color.YellowString(n.FileName()))
		}
		return nil
	},
}

func securityLabel(sec network.Security) string {
	switch s := sec.(type) {
	case network.Open:
		return "open"
	case network.PreSharedKey:
		if _, ok := s.Secret.(network.RawKey); ok {
			return "wpa (raw pre-shared key)"
		}
		return "wpa (passphrase)"
	default:
		return "unknown"
	}
}
