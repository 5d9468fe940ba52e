package param

import (
	"math"

	"cpw/maths"
)

// Range 参数取值范围，Step 为 0 表示无步进约束
type Range struct {
	Min     float64 `json:"min"`
	Default float64 `json:"default"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step,omitempty"`
}

// NewRange 创建范围
func NewRange(min, def, max float64, step ...float64) Range {
	r := Range{Min: min, Default: def, Max: max}
	if len(step) > 0 {
		r.Step = step[0]
	}
	return r
}

// HasStep 是否声明步进
func (r Range) HasStep() bool { return r.Step != 0 }

// Contains 是否在范围内
func (r Range) Contains(x float64) bool { return r.Min <= x && x <= r.Max }

// Clamp 限制到范围内
func (r Range) Clamp(x float64) float64 { return math.Min(math.Max(x, r.Min), r.Max) }

// Span 范围内 n 点线性等分
func (r Range) Span(n int) maths.Vector { return maths.Linspace(r.Min, r.Max, n) }

// DefaultValue 默认值
func (r Range) DefaultValue() maths.Vector { return maths.Scalar(r.Default) }
