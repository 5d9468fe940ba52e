package sweep

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 扫描曲线网页
type Charts struct {
	Records []*Record
}

// Render 每条曲线一张折线图
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	for _, rec := range c.Records {
		for _, s := range rec.Series {
			page.AddCharts(lineChart(rec, s))
		}
	}
	return page.Render(w)
}

func lineChart(rec *Record, s Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    rec.Title,
			Subtitle: label(s.Name, s.Unit),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        label(rec.XName, rec.XUnit),
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  label(s.Name, s.Unit),
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	x := make([]float64, len(rec.X))
	copy(x, rec.X)
	items := make([]opts.LineData, len(s.Y))
	for i, y := range s.Y {
		if finite(y) {
			items[i].Value = y
		} else {
			items[i].Value = "-"
		}
	}
	line.SetXAxis(x).AddSeries(s.Name, items)
	return line
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		slog.Error("图表输出失败", "err", err)
	}
}
