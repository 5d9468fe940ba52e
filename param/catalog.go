package param

import (
	"fmt"
	"log"

	"cpw/maths"
	"cpw/types"
)

// Component 可参数化元件
type Component interface {
	TypeName() string     // 类型名称
	Parameters() Registry // 参数范围
	Bindings() Bindings   // 参数读写绑定
}

// Variant 可构造的元件变体
type Variant[T Component] struct {
	Name       string   // 注册名称
	TypeName   string   // 类型名称
	Parameters Registry // 参数范围
	New        func() T // 以默认值构造
}

// Build 以默认值构造后应用参数，返回未识别的参数名称
func (v Variant[T]) Build(params map[string]maths.Vector) (T, []string, error) {
	c := v.New()
	unknown, err := c.Bindings().Apply(params)
	if err != nil {
		var zero T
		return zero, unknown, err
	}
	return c, unknown, nil
}

// Catalog 某一类别的变体注册表
type Catalog[T Component] struct {
	Category string
	variants map[string]Variant[T]
	order    []string
}

// NewCatalog 创建注册表
func NewCatalog[T Component](category string) *Catalog[T] {
	return &Catalog[T]{Category: category, variants: map[string]Variant[T]{}}
}

// Register 注册变体
// 注意：重复注册会触发致命错误并终止程序
func (c *Catalog[T]) Register(v Variant[T]) {
	if _, ok := c.variants[v.Name]; ok {
		log.Fatalf("%s 变体重复注册: %s", c.Category, v.Name)
	}
	c.variants[v.Name] = v
	c.order = append(c.order, v.Name)
}

// Lookup 查找变体
func (c *Catalog[T]) Lookup(name string) (Variant[T], error) {
	v, ok := c.variants[name]
	if !ok {
		return Variant[T]{}, fmt.Errorf("%s %q: %w", c.Category, name, types.ErrUnknownVariant)
	}
	v.Parameters = v.Parameters.Clone()
	return v, nil
}

// Names 按注册顺序返回名称
func (c *Catalog[T]) Names() []string { return append([]string(nil), c.order...) }

// New 按名称构造
func (c *Catalog[T]) New(name string, params map[string]maths.Vector) (T, []string, error) {
	v, err := c.Lookup(name)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return v.Build(params)
}
