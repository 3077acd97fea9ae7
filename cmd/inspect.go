package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/logging"
	"github.com/automoto/pongview/network"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Inspect prints per role and event statistics of a recording.
func Inspect(ctx *cli.Context) error {
	log := setupLogging(ctx)
	defer logging.Sync(log)

	if ctx.NArg() != 1 {
		return errors.New("missing recording file argument")
	}

	replay, err := network.OpenReplay(ctx.Args().First(), host.NewMonotonicClock())
	if err != nil {
		return err
	}
	rows := network.Summarize(replay.Events())

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Role", "Event", "Count", "First (ms)", "Last (ms)", "Mean gap (ms)"})
	for _, row := range rows {
		table.Append([]string{
			row.Role,
			string(row.Kind),
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.0f", row.First),
			fmt.Sprintf("%.0f", row.Last),
			fmt.Sprintf("%.1f", row.MeanGap()),
		})
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%d", replay.Len()), "", "", ""})
	table.Render()

	fmt.Print(buf.String())
	return nil
}
