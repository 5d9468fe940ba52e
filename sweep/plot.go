package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// 图片默认尺寸
var (
	PlotWidth  = 16 * vg.Centimeter
	PlotHeight = 10 * vg.Centimeter
)

// Plot 绘制指定曲线，未指定时绘制第一条
func (r *Record) Plot(names ...string) (*plot.Plot, error) {
	if len(names) == 0 {
		if len(r.Series) == 0 {
			return nil, fmt.Errorf("%s: 没有曲线", r.Title)
		}
		names = []string{r.Series[0].Name}
	}
	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = label(r.XName, r.XUnit)
	var lines []interface{}
	for _, name := range names {
		s, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s: 未知曲线 %q", r.Title, name)
		}
		xys := make(plotter.XYs, 0, len(s.Y))
		for i, y := range s.Y {
			if finite(y) {
				xys = append(xys, plotter.XY{X: r.X[i], Y: y})
			}
		}
		lines = append(lines, label(s.Name, s.Unit), xys)
		if len(names) == 1 {
			p.Y.Label.Text = label(s.Name, s.Unit)
		}
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// SavePlot 保存图片，格式由扩展名决定（png、svg、pdf 等）
func (r *Record) SavePlot(filename string, names ...string) error {
	p, err := r.Plot(names...)
	if err != nil {
		return err
	}
	return p.Save(PlotWidth, PlotHeight, filename)
}
