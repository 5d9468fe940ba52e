// Package line 谐振传输线模型。
//
// 传输线以并联 LCR 等效：ParallelCapacitance 为等效电容，ParallelInductance(n)
// 为第 n 阶模式等效电感，ParallelResistance 为等效损耗电阻。Z0 与 Gamma 提供
// ABCD 级联所需的特征阻抗与单位长度传播常数。
package line

import (
	"math"

	"cpw/maths"
	"cpw/param"
	"cpw/substrate"
)

// TransitionLine 传输线接口
type TransitionLine interface {
	param.Component
	Substrate() substrate.Substrate                 // 当前基板，可能为 nil
	AttachSubstrate(sub substrate.Substrate)        // 关联基板（共享引用）
	Length() maths.Vector                           // 长度
	SetLength(v maths.Vector) error                 // 设置长度
	ParallelCapacitance() (maths.Vector, error)     // 等效并联电容
	ParallelInductance(n int) (maths.Vector, error) // 第 n 阶等效并联电感
	ParallelResistance() (maths.Vector, error)      // 等效并联电阻
	ResonanceFrequency(n int) (maths.Vector, error) // 第 n 阶谐振角频率
	QualityFactor(n int) (maths.Vector, error)      // 第 n 阶品质因数
	Z0() (maths.Vector, error)                      // 特征阻抗
	Gamma(w maths.Vector) (maths.CVector, error)    // 单位长度传播常数
}

// 传输线公共参数声明
var (
	LengthRange = param.NewRange(5e-3, 28.449e-3, 40e-3, 1e-5) // 米

	baseDeclarations = param.Declarations{
		param.Declare("length", LengthRange),
	}
)

// Catalog 传输线变体注册表
var Catalog = param.NewCatalog[TransitionLine]("transition line")

func init() {
	Catalog.Register(param.Variant[TransitionLine]{
		Name: "simplified", TypeName: "SimplifiedTransitionLine", Parameters: SimplifiedParameters,
		New: func() TransitionLine { return DefaultSimplified() },
	})
	Catalog.Register(param.Variant[TransitionLine]{
		Name: "distributed", TypeName: "DistributedTransitionLine", Parameters: DistributedParameters,
		New: func() TransitionLine { return DefaultDistributed() },
	})
	Catalog.Register(param.Variant[TransitionLine]{
		Name: "geometric", TypeName: "GeometricTransitionLine", Parameters: GeometricParameters,
		New: func() TransitionLine { return DefaultGeometric() },
	})
}

// Variants 已注册的变体名称
func Variants() []string { return Catalog.Names() }

// base 传输线公共部分
type base struct {
	name      string
	length    maths.Vector
	substrate substrate.Substrate
}

func newBase(name string) base {
	return base{name: name, length: LengthRange.DefaultValue()}
}

func (b *base) Substrate() substrate.Substrate          { return b.substrate }
func (b *base) AttachSubstrate(sub substrate.Substrate) { b.substrate = sub }
func (b *base) Length() maths.Vector                    { return b.length.Clone() }
func (b *base) TypeName() string                        { return b.name }

// SetLength 设置长度
func (b *base) SetLength(v maths.Vector) error {
	if err := param.Validate(b.name, "length", v, param.Positive); err != nil {
		return err
	}
	b.length = v.Clone()
	return nil
}

// resonanceFrequency w_n = (L_n·C)^(-1/2)
func resonanceFrequency(line TransitionLine, n int) (maths.Vector, error) {
	if err := param.Mode(line.TypeName(), n); err != nil {
		return nil, err
	}
	l, err := line.ParallelInductance(n)
	if err != nil {
		return nil, err
	}
	c, err := line.ParallelCapacitance()
	if err != nil {
		return nil, err
	}
	return maths.Map(func(i int) float64 { return 1 / math.Sqrt(l.At(i)*c.At(i)) }, l, c)
}

// qualityFactor Q_n = w_n·R·C
func qualityFactor(line TransitionLine, n int) (maths.Vector, error) {
	w, err := line.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	r, err := line.ParallelResistance()
	if err != nil {
		return nil, err
	}
	c, err := line.ParallelCapacitance()
	if err != nil {
		return nil, err
	}
	return maths.Map(func(i int) float64 { return w.At(i) * r.At(i) * c.At(i) }, w, r, c)
}
