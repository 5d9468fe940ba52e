package coupling

import (
	"cpw/maths"
	"cpw/param"
	"cpw/types"
)

// 间隙电容参数声明
var (
	GapRange       = param.NewRange(1e-6, 3e-5, 1e-4)
	GapWidthRange  = param.NewRange(1e-6, 1e-5, 2e-5)
	ThicknessRange = param.NewRange(1e-7, 2e-7, 4e-7)

	GapParameters = param.Collect(baseDeclarations, param.Declarations{
		param.Declare("gap", GapRange),
		param.Declare("width", GapWidthRange),
		param.Declare("thickness", ThicknessRange),
	})
)

// Gap 平行板近似的间隙电容，C = ε·width·thickness/gap
type Gap struct {
	base
	gap       maths.Vector
	width     maths.Vector
	thickness maths.Vector
}

// NewGap 创建间隙电容，nil 参数保留默认值
func NewGap(resistance, gap, width, thickness maths.Vector) (*Gap, error) {
	c := DefaultGap()
	if err := param.Assign(
		param.Assignment{Set: c.SetResistance, Value: resistance},
		param.Assignment{Set: c.SetGap, Value: gap},
		param.Assignment{Set: c.SetWidth, Value: width},
		param.Assignment{Set: c.SetThickness, Value: thickness},
	); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultGap 默认参数的间隙电容
func DefaultGap() *Gap {
	return &Gap{
		base:      newBase("GapCapacitor"),
		gap:       GapRange.DefaultValue(),
		width:     GapWidthRange.DefaultValue(),
		thickness: ThicknessRange.DefaultValue(),
	}
}

func (*Gap) Parameters() param.Registry { return GapParameters.Clone() }
func (c *Gap) Gap() maths.Vector        { return c.gap.Clone() }
func (c *Gap) Width() maths.Vector      { return c.width.Clone() }
func (c *Gap) Thickness() maths.Vector  { return c.thickness.Clone() }

// SetGap 设置间隙
func (c *Gap) SetGap(v maths.Vector) error {
	if err := param.Validate(c.name, "gap", v, param.Positive); err != nil {
		return err
	}
	c.gap = v.Clone()
	return nil
}

// SetWidth 设置宽度
func (c *Gap) SetWidth(v maths.Vector) error {
	if err := param.Validate(c.name, "width", v, param.Positive); err != nil {
		return err
	}
	c.width = v.Clone()
	return nil
}

// SetThickness 设置厚度
func (c *Gap) SetThickness(v maths.Vector) error {
	if err := param.Validate(c.name, "thickness", v, param.Positive); err != nil {
		return err
	}
	c.thickness = v.Clone()
	return nil
}

// Capacitance C = ε·width·thickness/gap
func (c *Gap) Capacitance() (maths.Vector, error) {
	if c.substrate == nil {
		return nil, types.MissingSubstrate(c.name)
	}
	eps := c.substrate.Permittivity()
	return maths.Map(func(i int) float64 {
		return eps.At(i) * c.width.At(i) * c.thickness.At(i) / c.gap.At(i)
	}, eps, c.width, c.thickness, c.gap)
}

func (c *Gap) ParallelCapacitance(w maths.Vector) (maths.Vector, error) {
	return parallelCapacitance(c, w)
}

func (c *Gap) ParallelResistance(w maths.Vector) (maths.Vector, error) {
	return parallelResistance(c, w)
}

func (c *Gap) KFactor(w maths.Vector) (maths.Vector, error) { return kFactor(c, w) }

func (c *Gap) ParallelResonanceApprox(w maths.Vector) (maths.Vector, error) {
	return parallelResonanceApprox(c, w)
}

func (c *Gap) Impedance(w maths.Vector) (maths.CVector, error) { return impedance(c, w) }

// Bindings 参数读写绑定
func (c *Gap) Bindings() param.Bindings {
	return param.Bindings{
		"resistance": {Get: c.Resistance, Set: c.SetResistance},
		"gap":        {Get: c.Gap, Set: c.SetGap},
		"width":      {Get: c.Width, Set: c.SetWidth},
		"thickness":  {Get: c.Thickness, Set: c.SetThickness},
	}
}
