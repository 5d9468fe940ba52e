package line

import (
	"math"

	"cpw/maths"
	"cpw/param"
)

// 简化传输线参数声明
var (
	SimplifiedCapacitanceRange    = param.NewRange(1e-15, 1e-14, 1e-12)    // F
	SimplifiedResistanceRange     = param.NewRange(0, 50, 100, 1)          // Ω
	SimplifiedBaseInductanceRange = param.NewRange(1e-9, 1e-8, 1e-7, 1e-9) // H

	SimplifiedParameters = param.Collect(baseDeclarations, param.Declarations{
		param.Declare("capacitance", SimplifiedCapacitanceRange),
		param.Declare("resistance", SimplifiedResistanceRange),
		param.Declare("base_inductance", SimplifiedBaseInductanceRange),
	})
)

// Simplified 集总并联 LCR 传输线。
// ABCD 模型中按等效半波长线处理：第 n 阶谐振与 L_n = base_inductance/n² 一致。
type Simplified struct {
	base
	capacitance    maths.Vector
	resistance     maths.Vector
	baseInductance maths.Vector
}

// NewSimplified 创建简化传输线，nil 参数保留默认值
func NewSimplified(length, capacitance, resistance, baseInductance maths.Vector) (*Simplified, error) {
	line := DefaultSimplified()
	if err := param.Assign(
		param.Assignment{Set: line.SetLength, Value: length},
		param.Assignment{Set: line.SetCapacitance, Value: capacitance},
		param.Assignment{Set: line.SetResistance, Value: resistance},
		param.Assignment{Set: line.SetBaseInductance, Value: baseInductance},
	); err != nil {
		return nil, err
	}
	return line, nil
}

// DefaultSimplified 默认参数的简化传输线
func DefaultSimplified() *Simplified {
	return &Simplified{
		base:           newBase("SimplifiedTransitionLine"),
		capacitance:    SimplifiedCapacitanceRange.DefaultValue(),
		resistance:     SimplifiedResistanceRange.DefaultValue(),
		baseInductance: SimplifiedBaseInductanceRange.DefaultValue(),
	}
}

func (*Simplified) Parameters() param.Registry        { return SimplifiedParameters.Clone() }
func (line *Simplified) Capacitance() maths.Vector    { return line.capacitance.Clone() }
func (line *Simplified) Resistance() maths.Vector     { return line.resistance.Clone() }
func (line *Simplified) BaseInductance() maths.Vector { return line.baseInductance.Clone() }

// SetCapacitance 设置等效电容
func (line *Simplified) SetCapacitance(v maths.Vector) error {
	if err := param.Validate(line.name, "capacitance", v, param.Positive); err != nil {
		return err
	}
	line.capacitance = v.Clone()
	return nil
}

// SetResistance 设置等效电阻
func (line *Simplified) SetResistance(v maths.Vector) error {
	if err := param.Validate(line.name, "resistance", v, param.Positive); err != nil {
		return err
	}
	line.resistance = v.Clone()
	return nil
}

// SetBaseInductance 设置基模电感
func (line *Simplified) SetBaseInductance(v maths.Vector) error {
	if err := param.Validate(line.name, "base_inductance", v, param.Positive); err != nil {
		return err
	}
	line.baseInductance = v.Clone()
	return nil
}

func (line *Simplified) ParallelCapacitance() (maths.Vector, error) {
	return line.capacitance.Clone(), nil
}

// ParallelInductance L_n = base_inductance/n²
func (line *Simplified) ParallelInductance(n int) (maths.Vector, error) {
	if err := param.Mode(line.name, n); err != nil {
		return nil, err
	}
	n2 := maths.Harmonic(n)
	return maths.Map(func(i int) float64 { return line.baseInductance.At(i) / n2 }, line.baseInductance)
}

func (line *Simplified) ParallelResistance() (maths.Vector, error) {
	return line.resistance.Clone(), nil
}

func (line *Simplified) ResonanceFrequency(n int) (maths.Vector, error) {
	return resonanceFrequency(line, n)
}

func (line *Simplified) QualityFactor(n int) (maths.Vector, error) { return qualityFactor(line, n) }

// Z0 等效半波长线特征阻抗 (π/2)·sqrt(L1/C)
func (line *Simplified) Z0() (maths.Vector, error) {
	return maths.Map(func(i int) float64 {
		return math.Pi / 2 * math.Sqrt(line.baseInductance.At(i)/line.capacitance.At(i))
	}, line.baseInductance, line.capacitance)
}

// Gamma 等效单位长度传播常数，γ·l = Z0/R + j·π·w·sqrt(L1·C)
func (line *Simplified) Gamma(w maths.Vector) (maths.CVector, error) {
	return maths.MapC(func(i int) complex128 {
		l1, c, r, length := line.baseInductance.At(i), line.capacitance.At(i), line.resistance.At(i), line.length.At(i)
		z0 := math.Pi / 2 * math.Sqrt(l1/c)
		return complex(z0/r, math.Pi*w.At(i)*math.Sqrt(l1*c)) / complex(length, 0)
	}, line.baseInductance, line.capacitance, line.resistance, line.length, w)
}

// Bindings 参数读写绑定
func (line *Simplified) Bindings() param.Bindings {
	return param.Bindings{
		"length":          {Get: line.Length, Set: line.SetLength},
		"capacitance":     {Get: line.Capacitance, Set: line.SetCapacitance},
		"resistance":      {Get: line.Resistance, Set: line.SetResistance},
		"base_inductance": {Get: line.BaseInductance, Set: line.SetBaseInductance},
	}.Alias("inductance", "base_inductance")
}
