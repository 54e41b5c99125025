package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caldera-labs/aupdate/internal/platform"
	"github.com/caldera-labs/aupdate/internal/ui"
)

// updateCmd represents the "update" command: the full Latest -> Downloaded
// -> Validated chain, an interactive confirmation, and a handoff to the
// Launcher Adapter.
//
// Example usage:
//
//	aupdate update --current-version 1.5.0
//	aupdate update --current-version 1.5.0 --yes
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check, download, validate, and launch the newest release's installer",
	RunE:  RunUpdate,
}

// RunUpdate executes the update command.
func RunUpdate(cmd *cobra.Command, _ []string) error {
	logrus.Debug("Starting update command")

	updateCtx, updateCancel := withTimeout(cmd.Context())
	defer updateCancel()

	state, err := engine.Latest(updateCtx, earlyAccess)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if !state.Available() {
		_, printErr := fmt.Fprintf(os.Stdout, "%s %s\n", ui.InfoIcon(), ui.WhiteText("Already up to date."))
		if printErr != nil {
			logrus.Warnf("Failed to write to stdout: %v", printErr)
		}

		return nil
	}

	newRelease := state.New()

	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s %s\n",
		ui.UpgradeIcon(),
		ui.WhiteText(ui.FormatNewRelease(newRelease.Version().String())),
	)
	printChangeLog(newRelease.ChangeLog())

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Install %s now", newRelease.Version().String()),
			IsConfirm: true,
		}

		if _, promptErr := prompt.Run(); promptErr != nil {
			if errors.Is(promptErr, promptui.ErrAbort) {
				_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", ui.WarningIcon(), ui.WhiteText("Update cancelled."))

				return nil
			}

			return fmt.Errorf("prompt failed: %w", promptErr)
		}
	}

	progressSpinner := spinner.New(spinner.CharSets[14], spinnerSpeed)
	progressSpinner.Prefix = ui.InfoIcon() + " "
	progressSpinner.Suffix = " Downloading " + newRelease.Version().String() + "..."
	progressSpinner.Start()

	state, err = engine.Downloaded(updateCtx, state, func(percent int) {
		progressSpinner.Suffix = " " + ui.FormatPhaseProgress(ui.PhaseDownloading, percent)
	})

	progressSpinner.Stop()

	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	state = engine.Validated(state)
	if !state.Ready() {
		return fmt.Errorf("%w", ErrUpdateNotReady)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", ui.SuccessIcon(), ui.WhiteText("Launching installer..."))

	launcher := platform.NewLauncher()

	launchCtx, launchCancel := context.WithTimeout(cmd.Context(), launchTimeout)
	defer launchCancel()

	if err := launcher.Launch(launchCtx, state.FilePath()); err != nil {
		return fmt.Errorf("failed to launch installer: %w", err)
	}

	return nil
}

const launchTimeout = 30 * time.Second

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
