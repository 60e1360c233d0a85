package script

import (
	"strconv"

	"movielist/internal/movie"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable renders movies as a rounded table with a right-aligned ID column.
func RenderTable(movies []movie.Movie) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title"})
	for _, m := range movies {
		tw.AppendRow(table.Row{strconv.Itoa(m.ID), m.Title})
	}
	if len(movies) == 0 {
		tw.AppendRow(table.Row{"", "(no movies)"})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
