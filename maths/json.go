package maths

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// number 可表示非有限值的 JSON 数值
type number float64

func (x number) MarshalJSON() ([]byte, error) {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (x *number) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("数值解析: %q", s)
		}
		*x = number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*x = number(f)
	return nil
}

// MarshalJSON 标量编码为数值，数组编码为列表，非有限值编码为字符串
func (v Vector) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	if len(v) == 1 {
		return json.Marshal(number(v[0]))
	}
	ns := make([]number, len(v))
	for i, x := range v {
		ns[i] = number(x)
	}
	return json.Marshal(ns)
}

// UnmarshalJSON 接受数值或数值列表
func (v *Vector) UnmarshalJSON(b []byte) error {
	var ns []number
	if err := json.Unmarshal(b, &ns); err == nil {
		out := make(Vector, len(ns))
		for i, x := range ns {
			out[i] = float64(x)
		}
		*v = out
		return nil
	}
	var x number
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	*v = Vector{float64(x)}
	return nil
}
