package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mediadiff/internal/report"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderReportTable is a human-oriented view of the report. It is not part of
// the diffable text format.
func renderReportTable(rep report.Report) string {
	headers := []string{"File", "Duration", "Bit rate", "Video", "Audio"}
	rows := make([][]string, 0, len(rep.Summaries))
	for _, summary := range rep.Summaries {
		row := []string{
			summary.Name,
			report.FormatDuration(summary.Duration),
			report.FormatBitRate(summary.BitRate),
			"",
			"",
		}
		for _, stream := range summary.Streams {
			switch stream.Kind {
			case "Video":
				row[3] = stream.Rate
			case "Audio":
				row[4] = stream.Rate
			}
		}
		rows = append(rows, row)
	}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}
	footer := fmt.Sprintf("%d probed, %d skipped of %d candidates",
		rep.Stats.Probed, rep.Stats.Skipped, rep.Stats.Candidates)
	return renderTable(headers, rows, aligns) + "\n" + footer
}
