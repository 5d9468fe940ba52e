package substrate

import (
	"cpw/maths"
	"cpw/param"
)

// 有效基板参数声明
var (
	RelativePermittivityRange = param.NewRange(1, 5.05, 20)
	RelativePermeabilityRange = param.NewRange(1, 1, 5)

	EffectiveParameters = param.Collect(param.Declarations{
		param.Declare("relative_permittivity", RelativePermittivityRange),
		param.Declare("relative_permeability", RelativePermeabilityRange),
	})
)

// Effective 有效基板
type Effective struct {
	relativePermittivity maths.Vector
	relativePermeability maths.Vector
}

// NewEffective 创建有效基板
func NewEffective(relativePermittivity, relativePermeability maths.Vector) (*Effective, error) {
	sub := &Effective{}
	if err := sub.SetRelativePermittivity(relativePermittivity); err != nil {
		return nil, err
	}
	if err := sub.SetRelativePermeability(relativePermeability); err != nil {
		return nil, err
	}
	return sub, nil
}

// DefaultEffective 默认参数的有效基板
func DefaultEffective() *Effective {
	return &Effective{
		relativePermittivity: RelativePermittivityRange.DefaultValue(),
		relativePermeability: RelativePermeabilityRange.DefaultValue(),
	}
}

func (*Effective) TypeName() string                       { return "EffectiveSubstrate" }
func (*Effective) Parameters() param.Registry             { return EffectiveParameters.Clone() }
func (sub *Effective) RelativePermittivity() maths.Vector { return sub.relativePermittivity.Clone() }
func (sub *Effective) RelativePermeability() maths.Vector { return sub.relativePermeability.Clone() }

// SetRelativePermittivity 设置相对介电常数
func (sub *Effective) SetRelativePermittivity(v maths.Vector) error {
	if err := param.Validate("EffectiveSubstrate", "relative_permittivity", v, param.Positive); err != nil {
		return err
	}
	sub.relativePermittivity = v.Clone()
	return nil
}

// SetRelativePermeability 设置相对磁导率
func (sub *Effective) SetRelativePermeability(v maths.Vector) error {
	if err := param.Validate("EffectiveSubstrate", "relative_permeability", v, param.Positive); err != nil {
		return err
	}
	sub.relativePermeability = v.Clone()
	return nil
}

// Permittivity 绝对介电常数
func (sub *Effective) Permittivity() maths.Vector {
	out := make(maths.Vector, len(sub.relativePermittivity))
	for i, er := range sub.relativePermittivity {
		out[i] = er * maths.Epsilon0
	}
	return out
}

// Permeability 绝对磁导率
func (sub *Effective) Permeability() maths.Vector {
	out := make(maths.Vector, len(sub.relativePermeability))
	for i, mr := range sub.relativePermeability {
		out[i] = mr * maths.Mu0
	}
	return out
}

// Bindings 参数读写绑定
func (sub *Effective) Bindings() param.Bindings {
	return param.Bindings{
		"relative_permittivity": {Get: sub.RelativePermittivity, Set: sub.SetRelativePermittivity},
		"relative_permeability": {Get: sub.RelativePermeability, Set: sub.SetRelativePermeability},
	}.Alias("permittivity", "relative_permittivity").Alias("permeability", "relative_permeability")
}
