package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/caldera-labs/aupdate/internal/constants"
	"github.com/caldera-labs/aupdate/internal/ui"
)

// printChangeLog prints up to constants.ChangelogDisplayLimit changelog
// lines, noting how many were omitted beyond that.
func printChangeLog(lines []string) {
	if len(lines) == 0 {
		return
	}

	shown := lines
	if len(shown) > constants.ChangelogDisplayLimit {
		shown = shown[:constants.ChangelogDisplayLimit]
	}

	for _, line := range shown {
		if _, err := fmt.Fprintf(os.Stdout, "  - %s\n", line); err != nil {
			logrus.Warnf("Failed to write to stdout: %v", err)
		}
	}

	if omitted := len(lines) - len(shown); omitted > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "  %s\n", ui.WhiteText(fmt.Sprintf("...and %d more", omitted)))
	}
}

// outputJSON marshals data to indented JSON and prints it to stdout.
func outputJSON(data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := os.Stdout.WriteString(string(encoded) + "\n"); err != nil {
		return fmt.Errorf("error writing JSON output: %w", err)
	}

	return nil
}
