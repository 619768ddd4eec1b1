package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/trackstat/config"
	"github.com/bgraf/trackstat/filesystem"
	"github.com/bgraf/trackstat/geotrack"
	"github.com/bgraf/trackstat/report"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary [PATH...]",
	Short: "Print distance, elevation range and duration of GPX tracks",
	Long: `Summary loads every named GPX file and every GPX file of the named directories
and prints its metrics. Without a path the configured track directory is used,
without one the working directory. A failing track is reported and skipped.`,
	RunE: runSummaryCmd,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().BoolP("interactive", "i", false, "Select the tracks to summarize")
	summaryCmd.Flags().Bool("compare", false, "Add the metrics computed by gpxgo")
}

func runSummaryCmd(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(config.OutputFormat())
	if err != nil {
		return err
	}

	locale, err := report.ParseLocale(config.Locale())
	if err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	compare, _ := cmd.Flags().GetBool("compare")

	paths, err := trackPaths(args)
	if err != nil {
		return err
	}

	if interactive && len(paths) > 0 {
		paths = selectTracks(paths)
	}

	if len(paths) == 0 {
		return fmt.Errorf("no GPX tracks found")
	}

	entries := summarize(paths, compare)

	w := report.NewWriter(cmd.OutOrStdout(), format, locale)
	if err := w.Write(entries); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tracks failed", failed, len(entries))
	}

	return nil
}

// trackPaths resolves the command arguments to track files.
func trackPaths(args []string) ([]string, error) {
	roots := args
	if len(roots) == 0 {
		if config.HasTrackDirectory() {
			roots = []string{config.TrackDirectory()}
		} else {
			roots = []string{"."}
		}
	}

	paths, err := filesystem.GatherFiles(roots, filesystem.GatherOptions{
		Extensions: config.GPXExtensions(),
		Recursive:  config.Recursive(),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}

	return paths, nil
}

// summarize loads the tracks one after another. A failure only affects its own entry.
func summarize(paths []string, compare bool) []report.Entry {
	entries := make([]report.Entry, 0, len(paths))

	for _, path := range paths {
		entry := report.Entry{Path: path}

		entry.Metrics, entry.Err = geotrack.LoadMetrics(path)

		if compare && entry.Err == nil {
			ref, err := geotrack.LoadReference(path)
			if err != nil {
				log.Printf("Warning: gpxgo could not read %s: %s\n", path, err)
			} else {
				entry.Reference = &ref
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

func selectTracks(paths []string) []string {
	var selected []string

	prompt := &survey.MultiSelect{
		Message: "Tracks",
		Options: paths,
		Default: paths,
	}
	err := survey.AskOne(prompt, &selected)
	exitOnInterrupt(err)
	if err != nil {
		log.Fatal(err)
	}

	return selected
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
