package line

import (
	"cpw/maths"
	"cpw/param"
	"cpw/types"
)

// 几何传输线参数声明
var (
	WidthRange      = param.NewRange(1e-6, 1e-5, 2e-5)
	SeparationRange = param.NewRange(1e-6, 1e-5, 2e-5)

	GeometricParameters = param.Collect(baseDeclarations, param.Declarations{
		param.Declare("width", WidthRange),
		param.Declare("separation", SeparationRange),
		param.Declare("attenuation_constant", AttenuationConstantRange),
	})
)

// Geometric 由截面几何经保角变换得到单位长度参数的共面波导：
//
//	k0 = w/(w+2s), er = K(k0)/K(k0')
//	C' = 4·ε·er, L' = μ/(4·er)
//
// 求值需要已关联基板。
type Geometric struct {
	base
	width               maths.Vector
	separation          maths.Vector
	attenuationConstant maths.Vector
}

// NewGeometric 创建几何传输线，nil 参数保留默认值
func NewGeometric(length, width, separation, attenuationConstant maths.Vector) (*Geometric, error) {
	line := DefaultGeometric()
	if err := param.Assign(
		param.Assignment{Set: line.SetLength, Value: length},
		param.Assignment{Set: line.SetWidth, Value: width},
		param.Assignment{Set: line.SetSeparation, Value: separation},
		param.Assignment{Set: line.SetAttenuationConstant, Value: attenuationConstant},
	); err != nil {
		return nil, err
	}
	return line, nil
}

// DefaultGeometric 默认参数的几何传输线
func DefaultGeometric() *Geometric {
	return &Geometric{
		base:                newBase("GeometricTransitionLine"),
		width:               WidthRange.DefaultValue(),
		separation:          SeparationRange.DefaultValue(),
		attenuationConstant: AttenuationConstantRange.DefaultValue(),
	}
}

func (*Geometric) Parameters() param.Registry             { return GeometricParameters.Clone() }
func (line *Geometric) Width() maths.Vector               { return line.width.Clone() }
func (line *Geometric) Separation() maths.Vector          { return line.separation.Clone() }
func (line *Geometric) AttenuationConstant() maths.Vector { return line.attenuationConstant.Clone() }

// SetWidth 设置中心导体宽度
func (line *Geometric) SetWidth(v maths.Vector) error {
	if err := param.Validate(line.name, "width", v, param.Positive); err != nil {
		return err
	}
	line.width = v.Clone()
	return nil
}

// SetSeparation 设置导体与地平面间距
func (line *Geometric) SetSeparation(v maths.Vector) error {
	if err := param.Validate(line.name, "separation", v, param.Positive); err != nil {
		return err
	}
	line.separation = v.Clone()
	return nil
}

// SetAttenuationConstant 设置衰减常数
func (line *Geometric) SetAttenuationConstant(v maths.Vector) error {
	if err := param.Validate(line.name, "attenuation_constant", v, param.NonNegative); err != nil {
		return err
	}
	line.attenuationConstant = v.Clone()
	return nil
}

// ellipticRatio K(k0)/K(k0')
func (line *Geometric) ellipticRatio() (maths.Vector, error) {
	return maths.Map(func(i int) float64 {
		w, s := line.width.At(i), line.separation.At(i)
		return maths.EllipticRatio(w / (w + 2*s))
	}, line.width, line.separation)
}

// CapacitancePerLength C' = 4·ε·er
func (line *Geometric) CapacitancePerLength() (maths.Vector, error) {
	if line.substrate == nil {
		return nil, types.MissingSubstrate(line.name)
	}
	er, err := line.ellipticRatio()
	if err != nil {
		return nil, err
	}
	eps := line.substrate.Permittivity()
	return maths.Map(func(i int) float64 { return 4 * eps.At(i) * er.At(i) }, eps, er)
}

// InductancePerLength L' = μ/(4·er)
func (line *Geometric) InductancePerLength() (maths.Vector, error) {
	if line.substrate == nil {
		return nil, types.MissingSubstrate(line.name)
	}
	er, err := line.ellipticRatio()
	if err != nil {
		return nil, err
	}
	mu := line.substrate.Permeability()
	return maths.Map(func(i int) float64 { return mu.At(i) / (4 * er.At(i)) }, mu, er)
}

func (line *Geometric) perLength() (cpl, ipl maths.Vector, err error) {
	if cpl, err = line.CapacitancePerLength(); err != nil {
		return nil, nil, err
	}
	if ipl, err = line.InductancePerLength(); err != nil {
		return nil, nil, err
	}
	return cpl, ipl, nil
}

func (line *Geometric) ParallelCapacitance() (maths.Vector, error) {
	cpl, err := line.CapacitancePerLength()
	if err != nil {
		return nil, err
	}
	return parallelCapacitance(cpl, line.length)
}

func (line *Geometric) ParallelInductance(n int) (maths.Vector, error) {
	if err := param.Mode(line.name, n); err != nil {
		return nil, err
	}
	ipl, err := line.InductancePerLength()
	if err != nil {
		return nil, err
	}
	return parallelInductance(ipl, line.length, n)
}

func (line *Geometric) ParallelResistance() (maths.Vector, error) {
	cpl, ipl, err := line.perLength()
	if err != nil {
		return nil, err
	}
	return parallelResistance(cpl, ipl, line.attenuationConstant, line.length)
}

func (line *Geometric) ResonanceFrequency(n int) (maths.Vector, error) {
	return resonanceFrequency(line, n)
}

func (line *Geometric) QualityFactor(n int) (maths.Vector, error) { return qualityFactor(line, n) }

func (line *Geometric) Z0() (maths.Vector, error) {
	cpl, ipl, err := line.perLength()
	if err != nil {
		return nil, err
	}
	return characteristicImpedance(cpl, ipl)
}

func (line *Geometric) Gamma(w maths.Vector) (maths.CVector, error) {
	cpl, ipl, err := line.perLength()
	if err != nil {
		return nil, err
	}
	return propagation(cpl, ipl, line.attenuationConstant, w)
}

// Bindings 参数读写绑定
func (line *Geometric) Bindings() param.Bindings {
	return param.Bindings{
		"length":               {Get: line.Length, Set: line.SetLength},
		"width":                {Get: line.Width, Set: line.SetWidth},
		"separation":           {Get: line.Separation, Set: line.SetSeparation},
		"attenuation_constant": {Get: line.AttenuationConstant, Set: line.SetAttenuationConstant},
	}
}
