package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caldera-labs/aupdate/internal/ui"
)

// validateCmd represents the "validate" command: Latest() + Downloaded() +
// Validated(), reporting whether the cached installer's checksum matches.
//
// Example usage:
//
//	aupdate validate --current-version 1.5.0
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Download (if needed) and checksum-validate the newest release",
	RunE:  RunValidate,
}

// RunValidate executes the validate command.
func RunValidate(cmd *cobra.Command, _ []string) error {
	logrus.Debug("Starting validate command")

	validateCtx, validateCancel := withTimeout(cmd.Context())
	defer validateCancel()

	state, err := engine.Latest(validateCtx, earlyAccess)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if !state.Available() {
		return fmt.Errorf("%w", ErrNoUpdateAvailable)
	}

	state, err = engine.Downloaded(validateCtx, state, nil)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	state = engine.Validated(state)

	if !state.Ready() {
		_, printErr := fmt.Fprintf(
			os.Stdout,
			"%s %s\n",
			ui.ErrorIcon(),
			ui.WhiteText("Checksum validation failed."),
		)
		if printErr != nil {
			logrus.Warnf("Failed to write to stdout: %v", printErr)
		}

		return fmt.Errorf("%w", ErrUpdateNotReady)
	}

	_, err = fmt.Fprintf(os.Stdout, "%s %s\n", ui.SuccessIcon(), ui.WhiteText("Checksum validated."))
	if err != nil {
		logrus.Warnf("Failed to write to stdout: %v", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
