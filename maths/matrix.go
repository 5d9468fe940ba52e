package maths

import "math/cmplx"

// Matrix2 二端口传输矩阵 [[A B] [C D]]
type Matrix2 [2][2]complex128

// Identity2 单位矩阵
func Identity2() Matrix2 { return Matrix2{{1, 0}, {0, 1}} }

// SeriesImpedance 串联阻抗矩阵
func SeriesImpedance(z complex128) Matrix2 { return Matrix2{{1, z}, {0, 1}} }

// ShuntAdmittance 并联导纳矩阵
func ShuntAdmittance(y complex128) Matrix2 { return Matrix2{{1, 0}, {y, 1}} }

// Line 传输线矩阵，gl 为 γ·l，z0 为特征阻抗
func Line(gl, z0 complex128) Matrix2 {
	ch, sh := cmplx.Cosh(gl), cmplx.Sinh(gl)
	return Matrix2{{ch, z0 * sh}, {sh / z0, ch}}
}

// Mul 矩阵乘法 m·o
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

// Cascade 级联
func Cascade(ms ...Matrix2) Matrix2 {
	out := Identity2()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

// Det 行列式
func (m Matrix2) Det() complex128 { return m[0][0]*m[1][1] - m[0][1]*m[1][0] }

func (m Matrix2) A() complex128 { return m[0][0] }
func (m Matrix2) B() complex128 { return m[0][1] }
func (m Matrix2) C() complex128 { return m[1][0] }
func (m Matrix2) D() complex128 { return m[1][1] }
