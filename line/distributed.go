package line

import (
	"math"

	"cpw/maths"
	"cpw/param"
)

// 分布参数传输线参数声明
var (
	CapacitancePerLengthRange = param.NewRange(1e-12, 1e-11, 1e-10) // F/m
	InductancePerLengthRange  = param.NewRange(1e-10, 1e-6, 1e-5)   // H/m
	AttenuationConstantRange  = param.NewRange(0, 2.4e-4, 1e-3)     // Np/m

	DistributedParameters = param.Collect(baseDeclarations, param.Declarations{
		param.Declare("capacitance_per_length", CapacitancePerLengthRange),
		param.Declare("inductance_per_length", InductancePerLengthRange),
		param.Declare("attenuation_constant", AttenuationConstantRange),
	})
)

// Distributed 分布参数传输线
type Distributed struct {
	base
	capacitancePerLength maths.Vector
	inductancePerLength  maths.Vector
	attenuationConstant  maths.Vector
}

// NewDistributed 创建分布参数传输线，nil 参数保留默认值
func NewDistributed(length, capacitancePerLength, inductancePerLength, attenuationConstant maths.Vector) (*Distributed, error) {
	line := DefaultDistributed()
	if err := param.Assign(
		param.Assignment{Set: line.SetLength, Value: length},
		param.Assignment{Set: line.SetCapacitancePerLength, Value: capacitancePerLength},
		param.Assignment{Set: line.SetInductancePerLength, Value: inductancePerLength},
		param.Assignment{Set: line.SetAttenuationConstant, Value: attenuationConstant},
	); err != nil {
		return nil, err
	}
	return line, nil
}

// DefaultDistributed 默认参数的分布参数传输线
func DefaultDistributed() *Distributed {
	return &Distributed{
		base:                 newBase("DistributedTransitionLine"),
		capacitancePerLength: CapacitancePerLengthRange.DefaultValue(),
		inductancePerLength:  InductancePerLengthRange.DefaultValue(),
		attenuationConstant:  AttenuationConstantRange.DefaultValue(),
	}
}

func (*Distributed) Parameters() param.Registry { return DistributedParameters.Clone() }
func (line *Distributed) CapacitancePerLength() maths.Vector {
	return line.capacitancePerLength.Clone()
}
func (line *Distributed) InductancePerLength() maths.Vector { return line.inductancePerLength.Clone() }
func (line *Distributed) AttenuationConstant() maths.Vector { return line.attenuationConstant.Clone() }

// SetCapacitancePerLength 设置单位长度电容
func (line *Distributed) SetCapacitancePerLength(v maths.Vector) error {
	if err := param.Validate(line.name, "capacitance_per_length", v, param.Positive); err != nil {
		return err
	}
	line.capacitancePerLength = v.Clone()
	return nil
}

// SetInductancePerLength 设置单位长度电感
func (line *Distributed) SetInductancePerLength(v maths.Vector) error {
	if err := param.Validate(line.name, "inductance_per_length", v, param.Positive); err != nil {
		return err
	}
	line.inductancePerLength = v.Clone()
	return nil
}

// SetAttenuationConstant 设置衰减常数
func (line *Distributed) SetAttenuationConstant(v maths.Vector) error {
	if err := param.Validate(line.name, "attenuation_constant", v, param.NonNegative); err != nil {
		return err
	}
	line.attenuationConstant = v.Clone()
	return nil
}

func (line *Distributed) ParallelCapacitance() (maths.Vector, error) {
	return parallelCapacitance(line.capacitancePerLength, line.length)
}

func (line *Distributed) ParallelInductance(n int) (maths.Vector, error) {
	if err := param.Mode(line.name, n); err != nil {
		return nil, err
	}
	return parallelInductance(line.inductancePerLength, line.length, n)
}

func (line *Distributed) ParallelResistance() (maths.Vector, error) {
	return parallelResistance(line.capacitancePerLength, line.inductancePerLength, line.attenuationConstant, line.length)
}

func (line *Distributed) ResonanceFrequency(n int) (maths.Vector, error) {
	return resonanceFrequency(line, n)
}

func (line *Distributed) QualityFactor(n int) (maths.Vector, error) { return qualityFactor(line, n) }

func (line *Distributed) Z0() (maths.Vector, error) {
	return characteristicImpedance(line.capacitancePerLength, line.inductancePerLength)
}

func (line *Distributed) Gamma(w maths.Vector) (maths.CVector, error) {
	return propagation(line.capacitancePerLength, line.inductancePerLength, line.attenuationConstant, w)
}

// Bindings 参数读写绑定
func (line *Distributed) Bindings() param.Bindings {
	return param.Bindings{
		"length":                 {Get: line.Length, Set: line.SetLength},
		"capacitance_per_length": {Get: line.CapacitancePerLength, Set: line.SetCapacitancePerLength},
		"inductance_per_length":  {Get: line.InductancePerLength, Set: line.SetInductancePerLength},
		"attenuation_constant":   {Get: line.AttenuationConstant, Set: line.SetAttenuationConstant},
	}
}

// 以下为分布参数公式，几何传输线共用。

// parallelCapacitance C = C'·l/2
func parallelCapacitance(cpl, length maths.Vector) (maths.Vector, error) {
	return maths.Map(func(i int) float64 { return cpl.At(i) * length.At(i) / 2 }, cpl, length)
}

// parallelInductance L_n = 2·L'·l/(n²·π²)
func parallelInductance(ipl, length maths.Vector, n int) (maths.Vector, error) {
	n2 := maths.Harmonic(n)
	return maths.Map(func(i int) float64 {
		return 2 * ipl.At(i) * length.At(i) / (n2 * math.Pi * math.Pi)
	}, ipl, length)
}

// characteristicImpedance Z0 = sqrt(L'/C')
func characteristicImpedance(cpl, ipl maths.Vector) (maths.Vector, error) {
	return maths.Map(func(i int) float64 { return math.Sqrt(ipl.At(i) / cpl.At(i)) }, cpl, ipl)
}

// parallelResistance R = Z0/(α·l)，α = 0 时为无损极限 +Inf
func parallelResistance(cpl, ipl, alpha, length maths.Vector) (maths.Vector, error) {
	return maths.Map(func(i int) float64 {
		al := alpha.At(i) * length.At(i)
		if al == 0 {
			return math.Inf(1)
		}
		return math.Sqrt(ipl.At(i)/cpl.At(i)) / al
	}, cpl, ipl, alpha, length)
}

// propagation γ = α + j·w·sqrt(L'·C')
func propagation(cpl, ipl, alpha, w maths.Vector) (maths.CVector, error) {
	return maths.MapC(func(i int) complex128 {
		return complex(alpha.At(i), w.At(i)*math.Sqrt(ipl.At(i)*cpl.At(i)))
	}, cpl, ipl, alpha, w)
}
