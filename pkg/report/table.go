package report

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

// RenderTable writes the table format to w: one row per group sorted
// ascending by the primary metric, with the total as the footer.
func RenderTable(w io.Writer, t *tally.Table) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"GROUP"}
	for _, metric := range t.Metrics() {
		header = append(header, strings.ToUpper(metric))
	}

	tbl.AppendHeader(header)

	for _, group := range t.Groups() {
		tbl.AppendRow(metricRow(t, group))
	}

	tbl.AppendFooter(metricRow(t, tally.TotalKey))
	tbl.Render()
}

func metricRow(t *tally.Table, group string) table.Row {
	row := table.Row{group}

	for _, metric := range t.Metrics() {
		value := t.Get(group, metric)

		if metric == tally.MetricBytes && value >= 0 {
			row = append(row, humanize.Bytes(uint64(value)))
		} else {
			row = append(row, value)
		}
	}

	return row
}
