package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caldera-labs/aupdate/internal/ui"
)

// historyCmd represents the "history" command: Latest() followed by
// ReleaseHistory(), rendered as a table (or JSON with --json).
//
// Example usage:
//
//	aupdate history --current-version 1.5.0
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the release history visible on the current channel",
	RunE:  RunHistory,
}

// RunHistory executes the history command.
func RunHistory(cmd *cobra.Command, _ []string) error {
	logrus.Debug("Starting history command")

	historyCtx, historyCancel := withTimeout(cmd.Context())
	defer historyCancel()

	state, err := engine.Latest(historyCtx, earlyAccess)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	releases := state.ReleaseHistory()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		type releaseInfo struct {
			Version     string   `json:"version"`
			EarlyAccess bool     `json:"earlyAccess"`
			ChangeLog   []string `json:"changeLog"`
		}

		infos := make([]releaseInfo, 0, len(releases))
		for _, r := range releases {
			infos = append(infos, releaseInfo{
				Version:     r.Version().String(),
				EarlyAccess: r.EarlyAccess(),
				ChangeLog:   r.ChangeLog(),
			})
		}

		return outputJSON(map[string]any{"releases": infos})
	}

	if len(releases) == 0 {
		_, printErr := fmt.Fprintf(os.Stdout, "%s %s\n", ui.InfoIcon(), ui.WhiteText("No releases found."))
		if printErr != nil {
			logrus.Warnf("Failed to write to stdout: %v", printErr)
		}

		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRendition(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		}),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		}),
	)
	table.Header([]string{"Version", "Channel"})

	for _, r := range releases {
		row := []string{r.Version().String(), ui.ChannelLabel(r.EarlyAccess())}
		if r.EarlyAccess() {
			row = ui.ColorizeRow(row, color.New(color.FgYellow))
		}

		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("json", false, "Output in JSON format")
}
