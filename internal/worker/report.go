package worker

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReport renders a per-document quality summary table.
func WriteReport(w io.Writer, results []*Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Document", "Segments", "Splits", "Misses", "Fuzzy", "Avg Conf", "Avg Dur"})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.Document,
			r.TotalSegments,
			r.SplitSegments,
			r.Align.Misses,
			r.Align.Fuzzy,
			fmt.Sprintf("%.2f", r.AverageConfidence),
			fmt.Sprintf("%.2fs", r.AverageDuration),
		})
	}

	t.Render()
}
