package cmd

import (
	"fmt"
	"os"
	"strings"

	"netctl2iwd/internal/configs"
	"netctl2iwd/internal/convert"
	"netctl2iwd/internal/netctl"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	convertInputDir  string
	convertOutputDir string
	convertDryRun    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [profile...]",
	Short: "Convert netctl profiles into iwd network files",
	Long: `Converts one or more netctl wireless profiles into iwd's per-network
configuration format. Profiles are given either as explicit paths (globs
are supported) or as a whole directory with --input-dir.

Each profile is converted independently: a profile that fails to parse or
write is reported and the rest of the batch continues. Existing
destination files are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting convert command")

		if convertInputDir != "" && len(args) > 0 {
			return Logger.ErrorfAndReturn("profile arguments and --input-dir are mutually exclusive")
		}
		if convertInputDir == "" && len(args) == 0 {
			return Logger.ErrorfAndReturn("nothing to convert: give profile paths or --input-dir")
		}

		outputDir := convertOutputDir
		if !cmd.Flags().Changed("output-dir") {
			settings, err := configs.LoadUserSettings()
			if err != nil {
				Logger.Warnf("Failed to load user settings: %v", err)
			} else if settings.OutputDir != "" {
				Logger.Debugf("Using output directory from user settings: %s", settings.OutputDir)
				outputDir = settings.OutputDir
			}
		}

		var files []string
		if convertInputDir != "" {
			Logger.Infof("Reading profiles from %s", convertInputDir)
			found, err := netctl.FindProfiles(convertInputDir)
			if err != nil {
				// A directory we cannot enumerate is fatal; carry the OS
				// error number out as the exit code.
				Logger.Errorf("Failed to read profile directory %s: %v", convertInputDir, err)
				os.Exit(exitCode(err))
			}
			files = found
		} else {
			resolved, err := netctl.ResolveInputs(args)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to resolve profile paths: %v", err)
			}
			files = resolved
		}
		Logger.Debugf("Found %d profile(s)", len(files))

		spinner, cleanup := startSpinner("Converting profiles...")
		defer cleanup()

		results := convert.All(files, convert.Options{
			OutputDir: outputDir,
			DryRun:    convertDryRun,
		})

		var lines []string
		converted, failed := 0, 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				lines = append(lines, color.RedString("✗")+" Failed to convert "+
					color.YellowString(r.Input)+": "+r.Err.Error())
				continue
			}
			converted++
			verb := "Converted"
			if convertDryRun {
				verb = "Would convert"
			}
			lines = append(lines, color.GreenString("✓")+" "+verb+" "+
				color.YellowString(r.Input)+" → "+r.Dest)
		}

		summary := fmt.Sprintf("%d converted, %d failed", converted, failed)
		if convertDryRun {
			summary += " (dry run, nothing written)"
		}
		lines = append(lines, color.CyanString("→")+" "+summary)

		// Per-file failures are reported but never fail the process; the
		// operator fixes the inputs and re-runs.
		spinner.FinalMSG = strings.Join(lines, "\n")
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertInputDir, "input-dir", "i", "", "directory of profiles to process")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "o", configs.DefaultInstallPath, "directory to write iwd network files into")
	convertCmd.Flags().BoolVarP(&convertDryRun, "dry-run", "n", false, "parse and name profiles without writing anything")
}
