package cpw

import (
	"cpw/coupling"
	"cpw/line"
	"cpw/param"
	"cpw/substrate"
)

// VariantOption 可选变体
type VariantOption struct {
	TypeName   string         `json:"class"`
	Parameters param.Registry `json:"parameters"`
}

// Options 各类别可选变体与默认选择
type Options struct {
	TransitionLines    map[string]VariantOption `json:"transition_lines"`
	CapacitorCouplings map[string]VariantOption `json:"capacitor_couplings"`
	Substrates         map[string]VariantOption `json:"substrates"`
	Defaults           Selection                `json:"defaults"`
}

// AvailableOptions 列出注册表中的全部变体
func AvailableOptions() Options {
	return Options{
		TransitionLines:    variantOptions(line.Catalog),
		CapacitorCouplings: variantOptions(coupling.Catalog),
		Substrates:         variantOptions(substrate.Catalog),
		Defaults: Selection{
			TransitionLine: DefaultTransitionLine,
			InputCoupling:  DefaultCoupling,
			OutputCoupling: DefaultCoupling,
			Substrate:      DefaultSubstrate,
		},
	}
}

func variantOptions[T param.Component](c *param.Catalog[T]) map[string]VariantOption {
	out := map[string]VariantOption{}
	for _, name := range c.Names() {
		v, _ := c.Lookup(name)
		out[name] = VariantOption{TypeName: v.TypeName, Parameters: v.Parameters}
	}
	return out
}
