package coupling

import (
	"cpw/maths"
	"cpw/param"
)

// 简化耦合电容参数声明
var (
	CapacitanceRange = param.NewRange(1e-17, 4e-15, 7e-14, 1e-17) // F

	SimplifiedParameters = param.Collect(baseDeclarations, param.Declarations{
		param.Declare("capacitance", CapacitanceRange),
	})
)

// Simplified 直接给定电容值的耦合电容
type Simplified struct {
	base
	capacitance maths.Vector
}

// NewSimplified 创建简化耦合电容，nil 参数保留默认值
func NewSimplified(resistance, capacitance maths.Vector) (*Simplified, error) {
	c := DefaultSimplified()
	if err := param.Assign(
		param.Assignment{Set: c.SetResistance, Value: resistance},
		param.Assignment{Set: c.SetCapacitance, Value: capacitance},
	); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultSimplified 默认参数的简化耦合电容
func DefaultSimplified() *Simplified {
	return &Simplified{base: newBase("SimplifiedCapacitor"), capacitance: CapacitanceRange.DefaultValue()}
}

func (*Simplified) Parameters() param.Registry { return SimplifiedParameters.Clone() }

// Capacitance 电容
func (c *Simplified) Capacitance() (maths.Vector, error) { return c.capacitance.Clone(), nil }

// SetCapacitance 设置电容
func (c *Simplified) SetCapacitance(v maths.Vector) error {
	if err := param.Validate(c.name, "capacitance", v, param.Positive); err != nil {
		return err
	}
	c.capacitance = v.Clone()
	return nil
}

func (c *Simplified) ParallelCapacitance(w maths.Vector) (maths.Vector, error) {
	return parallelCapacitance(c, w)
}

func (c *Simplified) ParallelResistance(w maths.Vector) (maths.Vector, error) {
	return parallelResistance(c, w)
}

func (c *Simplified) KFactor(w maths.Vector) (maths.Vector, error) { return kFactor(c, w) }

func (c *Simplified) ParallelResonanceApprox(w maths.Vector) (maths.Vector, error) {
	return parallelResonanceApprox(c, w)
}

func (c *Simplified) Impedance(w maths.Vector) (maths.CVector, error) { return impedance(c, w) }

// Bindings 参数读写绑定
func (c *Simplified) Bindings() param.Bindings {
	return param.Bindings{
		"resistance":  {Get: c.Resistance, Set: c.SetResistance},
		"capacitance": {Get: func() maths.Vector { return c.capacitance.Clone() }, Set: c.SetCapacitance},
	}
}
