// Package coupling 输入输出耦合电容模型。
//
// 耦合电容 C_k 与串联负载电阻 R_l 在角频率 w 下换算为并联等效：
//
//	C_par = C_k / (1 + (w·C_k·R_l)²)
//	R_par = (1 + (w·C_k·R_l)²) / (w²·C_k²·R_l)
package coupling

import (
	"cpw/maths"
	"cpw/param"
	"cpw/substrate"
)

// CapacitorCoupling 耦合电容接口
type CapacitorCoupling interface {
	param.Component
	Substrate() substrate.Substrate                               // 当前基板，可能为 nil
	AttachSubstrate(sub substrate.Substrate)                      // 关联基板（共享引用）
	Resistance() maths.Vector                                     // 串联负载电阻
	SetResistance(v maths.Vector) error                           // 设置负载电阻
	Capacitance() (maths.Vector, error)                           // 物理电容，与频率无关
	ParallelCapacitance(w maths.Vector) (maths.Vector, error)     // 并联等效电容
	ParallelResistance(w maths.Vector) (maths.Vector, error)      // 并联等效电阻
	KFactor(w maths.Vector) (maths.Vector, error)                 // 耦合强度 w·C·R
	ParallelResonanceApprox(w maths.Vector) (maths.Vector, error) // 强耦合近似 R/k²
	Impedance(w maths.Vector) (maths.CVector, error)              // 串联阻抗 R + 1/(jwC)
}

// 耦合公共参数声明
var (
	ResistanceRange = param.NewRange(10, 30, 50, .1) // Ω

	baseDeclarations = param.Declarations{
		param.Declare("resistance", ResistanceRange),
	}
)

// Catalog 耦合电容变体注册表
var Catalog = param.NewCatalog[CapacitorCoupling]("capacitor coupling")

func init() {
	Catalog.Register(param.Variant[CapacitorCoupling]{
		Name: "simplified", TypeName: "SimplifiedCapacitor", Parameters: SimplifiedParameters,
		New: func() CapacitorCoupling { return DefaultSimplified() },
	})
	Catalog.Register(param.Variant[CapacitorCoupling]{
		Name: "gap", TypeName: "GapCapacitor", Parameters: GapParameters,
		New: func() CapacitorCoupling { return DefaultGap() },
	})
	Catalog.Register(param.Variant[CapacitorCoupling]{
		Name: "finger", TypeName: "FingerCapacitor", Parameters: FingerParameters,
		New: func() CapacitorCoupling { return DefaultFinger() },
	})
}

// Variants 已注册的变体名称
func Variants() []string { return Catalog.Names() }

// base 耦合电容公共部分
type base struct {
	name       string
	resistance maths.Vector
	substrate  substrate.Substrate
}

func newBase(name string) base {
	return base{name: name, resistance: ResistanceRange.DefaultValue()}
}

func (b *base) TypeName() string                        { return b.name }
func (b *base) Substrate() substrate.Substrate          { return b.substrate }
func (b *base) AttachSubstrate(sub substrate.Substrate) { b.substrate = sub }
func (b *base) Resistance() maths.Vector                { return b.resistance.Clone() }

// SetResistance 设置负载电阻
func (b *base) SetResistance(v maths.Vector) error {
	if err := param.Validate(b.name, "resistance", v, param.Positive); err != nil {
		return err
	}
	b.resistance = v.Clone()
	return nil
}

// 以下公式对所有变体通用，C_k 由变体的 Capacitance 提供。

func parallelCapacitance(c CapacitorCoupling, w maths.Vector) (maths.Vector, error) {
	ck, err := c.Capacitance()
	if err != nil {
		return nil, err
	}
	rl := c.Resistance()
	return maths.Map(func(i int) float64 {
		k := w.At(i) * ck.At(i) * rl.At(i)
		return ck.At(i) / (1 + k*k)
	}, w, ck, rl)
}

func parallelResistance(c CapacitorCoupling, w maths.Vector) (maths.Vector, error) {
	ck, err := c.Capacitance()
	if err != nil {
		return nil, err
	}
	rl := c.Resistance()
	return maths.Map(func(i int) float64 {
		wi, cki, rli := w.At(i), ck.At(i), rl.At(i)
		k := wi * cki * rli
		return (1 + k*k) / (wi * wi * cki * cki * rli)
	}, w, ck, rl)
}

func kFactor(c CapacitorCoupling, w maths.Vector) (maths.Vector, error) {
	ck, err := c.Capacitance()
	if err != nil {
		return nil, err
	}
	rl := c.Resistance()
	return maths.Map(func(i int) float64 { return w.At(i) * ck.At(i) * rl.At(i) }, w, ck, rl)
}

func parallelResonanceApprox(c CapacitorCoupling, w maths.Vector) (maths.Vector, error) {
	k, err := c.KFactor(w)
	if err != nil {
		return nil, err
	}
	rl := c.Resistance()
	return maths.Map(func(i int) float64 { return rl.At(i) / (k.At(i) * k.At(i)) }, rl, k)
}

func impedance(c CapacitorCoupling, w maths.Vector) (maths.CVector, error) {
	ck, err := c.Capacitance()
	if err != nil {
		return nil, err
	}
	rl := c.Resistance()
	return maths.MapC(func(i int) complex128 {
		return complex(rl.At(i), -1/(w.At(i)*ck.At(i)))
	}, w, ck, rl)
}
