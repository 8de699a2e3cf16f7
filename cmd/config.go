package cmd

import (
	"fmt"

	"netctl2iwd/internal/configs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage netctl2iwd user settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current user settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := configs.LoadUserSettings()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user settings: %v", err)
		}

		path, err := configs.SettingsPath()
		if err == nil {
			fmt.Printf("Settings file: %s\n", color.YellowString(path))
		}
		outputDir := settings.OutputDir
		if outputDir == "" {
			outputDir = configs.DefaultInstallPath + " (default)"
		}
		fmt.Printf("Output directory: %s\n", outputDir)
		return nil
	},
}

var configSetOutputDirCmd = &cobra.Command{
	Use:   "set-output-dir <path>",
	Short: "Set the default output directory for converted network files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := configs.LoadUserSettings()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user settings: %v", err)
		}

		settings.OutputDir = args[0]
		if err := configs.SaveUserSettings(settings); err != nil {
			return Logger.ErrorfAndReturn("Failed to save user settings: %v", err)
		}

		fmt.Printf("%s Default output directory set to %s\n",
			color.GreenString("✓"), color.YellowString(args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetOutputDirCmd)
}
