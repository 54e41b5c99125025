package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caldera-labs/aupdate/internal/ui"
)

const spinnerSpeed = 100 * time.Millisecond

// downloadCmd represents the "download" command: Latest() followed by
// Downloaded(), reporting progress as the installer streams to the cache.
//
// Example usage:
//
//	aupdate download --current-version 1.5.0
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the newest available release",
	RunE:  RunDownload,
}

// RunDownload executes the download command.
func RunDownload(cmd *cobra.Command, _ []string) error {
	logrus.Debug("Starting download command")

	downloadCtx, downloadCancel := withTimeout(cmd.Context())
	defer downloadCancel()

	state, err := engine.Latest(downloadCtx, earlyAccess)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if !state.Available() {
		return fmt.Errorf("%w", ErrNoUpdateAvailable)
	}

	progressSpinner := spinner.New(spinner.CharSets[14], spinnerSpeed)
	progressSpinner.Prefix = ui.InfoIcon() + " "
	progressSpinner.Suffix = " Downloading " + state.New().Version().String() + "..."
	progressSpinner.Start()

	state, err = engine.Downloaded(downloadCtx, state, func(percent int) {
		progressSpinner.Suffix = " " + ui.FormatPhaseProgress(ui.PhaseDownloading, percent)
	})

	progressSpinner.Stop()

	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	_, err = fmt.Fprintf(
		os.Stdout,
		"%s %s\n",
		ui.SuccessIcon(),
		ui.WhiteText(fmt.Sprintf("Downloaded to %s", state.FilePath())),
	)
	if err != nil {
		logrus.Warnf("Failed to write to stdout: %v", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
