package param

import (
	"maps"
	"sort"
	"strings"

	"cpw/maths"
)

// Declaration 单个参数声明
type Declaration struct {
	Name  string
	Range Range
}

// Declare 声明参数
func Declare(name string, r Range) Declaration { return Declaration{Name: name, Range: r} }

// Declarations 某一类型自身声明的参数
type Declarations []Declaration

// Registry 参数名称到范围的映射
type Registry map[string]Range

// Collect 按从基类型到具体类型的顺序合并声明，后声明覆盖先声明。
func Collect(chain ...Declarations) Registry {
	reg := Registry{}
	for _, decls := range chain {
		for _, d := range decls {
			reg[strings.ToLower(d.Name)] = d.Range
		}
	}
	return reg
}

// Clone 复制，包级注册表只通过副本对外提供
func (reg Registry) Clone() Registry { return maps.Clone(reg) }

// Lookup 查找范围
func (reg Registry) Lookup(name string) (Range, bool) {
	r, ok := reg[strings.ToLower(name)]
	return r, ok
}

// Names 排序后的参数名称
func (reg Registry) Names() []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults 全部默认值
func (reg Registry) Defaults() map[string]maths.Vector {
	out := make(map[string]maths.Vector, len(reg))
	for name, r := range reg {
		out[name] = r.DefaultValue()
	}
	return out
}
