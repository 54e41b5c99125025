package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caldera-labs/aupdate/internal/ui"
)

// checkCmd represents the "check" command: a single Latest() call reporting
// whether a new release is available, with no download or validation side
// effects.
//
// Example usage:
//
//	aupdate check --current-version 1.5.0
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a newer release is available",
	RunE:  RunCheck,
}

// RunCheck executes the check command.
func RunCheck(cmd *cobra.Command, _ []string) error {
	logrus.Debug("Starting check command")

	checkCtx, checkCancel := withTimeout(cmd.Context())
	defer checkCancel()

	state, err := engine.Latest(checkCtx, earlyAccess)
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

	_, err = fmt.Fprintf(
		os.Stdout,
		"%s %s\n",
		ui.UpgradeIcon(),
		ui.WhiteText(ui.FormatNewRelease(newRelease.Version().String())),
	)
	if err != nil {
		logrus.Warnf("Failed to write to stdout: %v", err)
	}

	printChangeLog(newRelease.ChangeLog())

	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
