package maths

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"cpw/types"
)

// Vector 参数数组，长度为 1 时按标量参与广播
type Vector []float64

// Scalar 创建标量
func Scalar(x float64) Vector { return Vector{x} }

// Of 创建数组（复制输入）
func Of(x ...float64) Vector { return append(Vector(nil), x...) }

// Linspace 线性等分区间
func Linspace(min, max float64, n int) Vector {
	if n < 2 {
		return Vector{min}
	}
	return floats.Span(make(Vector, n), min, max)
}

// Logspace 对数等分区间，min 与 max 必须为正
func Logspace(min, max float64, n int) Vector {
	if n < 2 {
		return Vector{min}
	}
	return floats.LogSpan(make(Vector, n), min, max)
}

// Len 元素数量
func (v Vector) Len() int { return len(v) }

// IsScalar 是否为标量
func (v Vector) IsScalar() bool { return len(v) == 1 }

// At 广播读取第 i 个元素
func (v Vector) At(i int) float64 {
	if len(v) == 1 {
		return v[0]
	}
	return v[i]
}

// Float64 第一个元素
func (v Vector) Float64() float64 { return v[0] }

// Clone 复制
func (v Vector) Clone() Vector { return append(Vector(nil), v...) }

// String 格式化
func (v Vector) String() string {
	if len(v) == 1 {
		return fmt.Sprintf("%g", v[0])
	}
	return fmt.Sprintf("%g", []float64(v))
}

// Broadcast 计算一组数组的广播长度
func Broadcast(vs ...Vector) (int, error) {
	n := 1
	for _, v := range vs {
		switch {
		case len(v) == 0:
			return 0, fmt.Errorf("empty vector: %w", types.ErrShapeMismatch)
		case len(v) == 1, len(v) == n:
		case n == 1:
			n = len(v)
		default:
			return 0, fmt.Errorf("length %d against %d: %w", len(v), n, types.ErrShapeMismatch)
		}
	}
	return n, nil
}

// Map 按广播长度逐元素计算
func Map(f func(i int) float64, vs ...Vector) (Vector, error) {
	n, err := Broadcast(vs...)
	if err != nil {
		return nil, err
	}
	out := make(Vector, n)
	for i := range out {
		out[i] = f(i)
	}
	return out, nil
}

// CVector 复数数组
type CVector []complex128

// At 广播读取第 i 个元素
func (v CVector) At(i int) complex128 {
	if len(v) == 1 {
		return v[0]
	}
	return v[i]
}

// MapC 按广播长度逐元素计算复数结果
func MapC(f func(i int) complex128, vs ...Vector) (CVector, error) {
	n, err := Broadcast(vs...)
	if err != nil {
		return nil, err
	}
	out := make(CVector, n)
	for i := range out {
		out[i] = f(i)
	}
	return out, nil
}

// Real 实部
func (v CVector) Real() Vector {
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = real(c)
	}
	return out
}

// Imag 虚部
func (v CVector) Imag() Vector {
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = imag(c)
	}
	return out
}
