package app

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kurochkinivan/cover_client/internal/queue"
)

func renderSummary(view queue.View) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"File", "Size", "Status", "Cover", "Error"})

	for _, e := range view.Entries {
		tw.AppendRow(table.Row{e.Name, e.Size, e.Status, e.OutputName, e.Error})
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d files", view.Counts.Total),
		"",
		fmt.Sprintf("%d ok, %d failed", view.Counts.Succeeded, view.Counts.Failed),
		"",
		"",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
