// Package substrate 基板材料模型，为传输线与耦合电容提供介电常数与磁导率。
package substrate

import (
	"cpw/maths"
	"cpw/param"
)

// Substrate 基板接口
type Substrate interface {
	param.Component
	Permittivity() maths.Vector // 绝对介电常数 ε = εr·ε0
	Permeability() maths.Vector // 绝对磁导率 μ = μr·μ0
}

// Catalog 基板变体注册表
var Catalog = param.NewCatalog[Substrate]("substrate")

func init() {
	Catalog.Register(param.Variant[Substrate]{
		Name:       "effective",
		TypeName:   "EffectiveSubstrate",
		Parameters: EffectiveParameters,
		New:        func() Substrate { return DefaultEffective() },
	})
}

// Variants 已注册的变体名称
func Variants() []string { return Catalog.Names() }
