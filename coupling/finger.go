package coupling

import (
	"cpw/maths"
	"cpw/param"
	"cpw/types"
)

// 叉指电容参数声明
var (
	FingerLengthRange    = param.NewRange(5e-5, 1e-4, 2e-4)
	FingerThicknessRange = param.NewRange(1e-7, 2e-7, 4e-7)
	FingerCountRange     = param.NewRange(1, 5, 20, 1)
	FingerGapRange       = param.NewRange(1e-6, 3.3e-6, 7e-6)

	FingerParameters = param.Collect(baseDeclarations, param.Declarations{
		param.Declare("length", FingerLengthRange),
		param.Declare("thickness", FingerThicknessRange),
		param.Declare("count", FingerCountRange),
		param.Declare("gap", FingerGapRange),
	})
)

// Finger 叉指电容，C = ε·length·thickness·count/gap
type Finger struct {
	base
	length    maths.Vector
	thickness maths.Vector
	count     maths.Vector
	gap       maths.Vector
}

// NewFinger 创建叉指电容，nil 参数保留默认值
func NewFinger(resistance, length, thickness, count, gap maths.Vector) (*Finger, error) {
	c := DefaultFinger()
	if err := param.Assign(
		param.Assignment{Set: c.SetResistance, Value: resistance},
		param.Assignment{Set: c.SetFingerLength, Value: length},
		param.Assignment{Set: c.SetFingerThickness, Value: thickness},
		param.Assignment{Set: c.SetFingerCount, Value: count},
		param.Assignment{Set: c.SetFingerGap, Value: gap},
	); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultFinger 默认参数的叉指电容
func DefaultFinger() *Finger {
	return &Finger{
		base:      newBase("FingerCapacitor"),
		length:    FingerLengthRange.DefaultValue(),
		thickness: FingerThicknessRange.DefaultValue(),
		count:     FingerCountRange.DefaultValue(),
		gap:       FingerGapRange.DefaultValue(),
	}
}

func (*Finger) Parameters() param.Registry      { return FingerParameters.Clone() }
func (c *Finger) FingerLength() maths.Vector    { return c.length.Clone() }
func (c *Finger) FingerThickness() maths.Vector { return c.thickness.Clone() }
func (c *Finger) FingerCount() maths.Vector     { return c.count.Clone() }
func (c *Finger) FingerGap() maths.Vector       { return c.gap.Clone() }

// SetFingerLength 设置叉指长度
func (c *Finger) SetFingerLength(v maths.Vector) error {
	if err := param.Validate(c.name, "finger_length", v, param.Positive); err != nil {
		return err
	}
	c.length = v.Clone()
	return nil
}

// SetFingerThickness 设置叉指厚度
func (c *Finger) SetFingerThickness(v maths.Vector) error {
	if err := param.Validate(c.name, "finger_thickness", v, param.Positive); err != nil {
		return err
	}
	c.thickness = v.Clone()
	return nil
}

// SetFingerCount 设置叉指数量
func (c *Finger) SetFingerCount(v maths.Vector) error {
	if err := param.Validate(c.name, "finger_count", v, param.PositiveInteger); err != nil {
		return err
	}
	c.count = v.Clone()
	return nil
}

// SetFingerGap 设置叉指间隙
func (c *Finger) SetFingerGap(v maths.Vector) error {
	if err := param.Validate(c.name, "finger_gap", v, param.Positive); err != nil {
		return err
	}
	c.gap = v.Clone()
	return nil
}

// Capacitance C = ε·length·thickness·count/gap
func (c *Finger) Capacitance() (maths.Vector, error) {
	if c.substrate == nil {
		return nil, types.MissingSubstrate(c.name)
	}
	eps := c.substrate.Permittivity()
	return maths.Map(func(i int) float64 {
		return eps.At(i) * c.length.At(i) * c.thickness.At(i) * c.count.At(i) / c.gap.At(i)
	}, eps, c.length, c.thickness, c.count, c.gap)
}

func (c *Finger) ParallelCapacitance(w maths.Vector) (maths.Vector, error) {
	return parallelCapacitance(c, w)
}

func (c *Finger) ParallelResistance(w maths.Vector) (maths.Vector, error) {
	return parallelResistance(c, w)
}

func (c *Finger) KFactor(w maths.Vector) (maths.Vector, error) { return kFactor(c, w) }

func (c *Finger) ParallelResonanceApprox(w maths.Vector) (maths.Vector, error) {
	return parallelResonanceApprox(c, w)
}

func (c *Finger) Impedance(w maths.Vector) (maths.CVector, error) { return impedance(c, w) }

// Bindings 参数读写绑定，注册名称与 finger_ 前缀名称均可用
func (c *Finger) Bindings() param.Bindings {
	return param.Bindings{
		"resistance": {Get: c.Resistance, Set: c.SetResistance},
		"length":     {Get: c.FingerLength, Set: c.SetFingerLength},
		"thickness":  {Get: c.FingerThickness, Set: c.SetFingerThickness},
		"count":      {Get: c.FingerCount, Set: c.SetFingerCount},
		"gap":        {Get: c.FingerGap, Set: c.SetFingerGap},
	}.Alias("finger_length", "length").
		Alias("finger_thickness", "thickness").
		Alias("finger_count", "count").
		Alias("finger_gap", "gap")
}
