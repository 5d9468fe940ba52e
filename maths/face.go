package maths

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/unit/constant"
)

// 物理常量
var (
	Epsilon0 = float64(constant.ElectricConstant) // 真空介电常数
	Mu0      = float64(constant.MagneticConstant) // 真空磁导率
)

// EllipticRatio 共面波导保角变换系数 K(k)/K(k')，k' = sqrt(1-k²)。
// K 以参数形式 m 取值：K(m=k)。
func EllipticRatio(k float64) float64 {
	kp := math.Sqrt(1 - k*k)
	return mathext.CompleteK(k) / mathext.CompleteK(kp)
}

// Harmonic 第 n 阶模式系数 n²
func Harmonic(n int) float64 { return float64(n) * float64(n) }
