package types

// 默认参数常量定义
var (
	Tolerance     = 1e-6 // 收敛容差
	MaxIterations = 50   // 最大迭代次数
	MaxMode       = 1000 // 最大谐振模式
)
