package param

import (
	"math"

	"cpw/maths"
	"cpw/types"
)

// Constraint 元素约束
type Constraint struct {
	Reason string
	OK     func(x float64) bool
}

// 常用约束
var (
	Positive = Constraint{
		Reason: "must be positive",
		OK:     func(x float64) bool { return x > 0 },
	}
	NonNegative = Constraint{
		Reason: "must be non-negative",
		OK:     func(x float64) bool { return x >= 0 },
	}
	PositiveInteger = Constraint{
		Reason: "must be a positive integer",
		OK:     func(x float64) bool { return x > 0 && x == math.Trunc(x) && !math.IsInf(x, 0) },
	}
)

// Validate 逐元素校验，返回第一个违反约束的元素
func Validate(component, name string, v maths.Vector, c Constraint) error {
	if len(v) == 0 {
		return &types.ParameterError{Component: component, Parameter: name, Index: -1, Value: math.NaN(), Reason: "empty value"}
	}
	for i, x := range v {
		if !c.OK(x) {
			idx := i
			if len(v) == 1 {
				idx = -1
			}
			return &types.ParameterError{Component: component, Parameter: name, Index: idx, Value: x, Reason: c.Reason}
		}
	}
	return nil
}

// Mode 校验谐振模式序号
func Mode(component string, n int) error {
	if n < 1 {
		return &types.ParameterError{Component: component, Parameter: "n", Index: -1, Value: float64(n), Reason: "mode must be at least 1"}
	}
	return nil
}
