package server

import (
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// statusPieData returns one slice per status with a non-zero count in the
// order of runstatus.Statuses. Nodes without status come last.
func statusPieData(summary map[runstatus.RunStatus]int) []opts.PieData {
	data := []opts.PieData{}
	for _, s := range append(runstatus.Statuses(), runstatus.StatusUndefined) {
		count := summary[s]
		if count == 0 {
			continue
		}
		data = append(data, opts.PieData{
			Name:      runstatus.FilterValue(s),
			Value:     count,
			ItemStyle: &opts.ItemStyle{Color: runstatus.DisplayFor(s).Color.Value},
		})
	}
	return data
}

func statusPieChart(title string, summary map[runstatus.RunStatus]int) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Integration test status"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithInitializationOpts(opts.Initialization{
			Height: "300px",
			Width:  "100%",
		}),
	)
	pie.AddSeries("Status", statusPieData(summary)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}))
	return pie
}
