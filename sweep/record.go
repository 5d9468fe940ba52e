// Package sweep 频率与参数扫描，以及扫描结果的报告输出。
package sweep

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"cpw/maths"
)

// Series 一条扫描曲线
type Series struct {
	Name string       `json:"name"`
	Unit string       `json:"unit,omitempty"`
	Y    maths.Vector `json:"y"`
}

// Record 扫描记录，所有曲线共享横轴
type Record struct {
	Title  string       `json:"title"`
	XName  string       `json:"x_name"`
	XUnit  string       `json:"x_unit,omitempty"`
	X      maths.Vector `json:"x"`
	Series []Series     `json:"series"`
}

// Add 增加曲线，长度必须与横轴一致
func (r *Record) Add(name, unit string, y maths.Vector) error {
	if len(y) != len(r.X) {
		return fmt.Errorf("%s: %d 点，横轴 %d 点", name, len(y), len(r.X))
	}
	r.Series = append(r.Series, Series{Name: name, Unit: unit, Y: y})
	return nil
}

// Lookup 按名称查找曲线
func (r *Record) Lookup(name string) (Series, bool) {
	for _, s := range r.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

// Peak 曲线最大值所在的横轴位置，忽略非有限值
func (r *Record) Peak(name string) (x, y float64, ok bool) {
	s, ok := r.Lookup(name)
	if !ok || len(s.Y) == 0 {
		return 0, 0, false
	}
	ys := make([]float64, len(s.Y))
	for i, v := range s.Y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = math.Inf(-1)
		}
		ys[i] = v
	}
	i := floats.MaxIdx(ys)
	return r.X[i], s.Y[i], true
}

// Render 以 JSON 输出
func (r *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// label 曲线显示名称
func label(name, unit string) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, unit)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
