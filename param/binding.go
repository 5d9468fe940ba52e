package param

import (
	"fmt"
	"sort"
	"strings"

	"cpw/maths"
	"cpw/types"
)

// Binding 参数读写绑定
type Binding struct {
	Get func() maths.Vector
	Set func(maths.Vector) error
}

// Bindings 参数名称到读写绑定的映射，替代运行时反射查找
type Bindings map[string]Binding

// Alias 增加别名
func (b Bindings) Alias(alias, name string) Bindings {
	if bind, ok := b[name]; ok {
		b[alias] = bind
	}
	return b
}

func (b Bindings) lookup(name string) (Binding, error) {
	bind, ok := b[strings.ToLower(name)]
	if !ok {
		return Binding{}, fmt.Errorf("%q: %w", name, types.ErrUnknownParameter)
	}
	return bind, nil
}

// Get 读取参数
func (b Bindings) Get(name string) (maths.Vector, error) {
	bind, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return bind.Get(), nil
}

// Set 设置参数
func (b Bindings) Set(name string, v maths.Vector) error {
	bind, err := b.lookup(name)
	if err != nil {
		return err
	}
	return bind.Set(v)
}

// Apply 按名称顺序批量设置参数。未知名称不报错，收集后返回；
// 任一参数校验失败时回溯已设置的参数。
func (b Bindings) Apply(params map[string]maths.Vector) (unknown []string, err error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	type orig struct {
		bind  Binding
		value maths.Vector
	}
	var applied []orig
	for _, name := range names {
		bind, lerr := b.lookup(name)
		if lerr != nil {
			unknown = append(unknown, name)
			continue
		}
		old := bind.Get()
		if err := bind.Set(params[name]); err != nil {
			// 回溯写回的是此前已通过校验的值，不会失败
			for i := len(applied) - 1; i >= 0; i-- {
				_ = applied[i].bind.Set(applied[i].value)
			}
			return unknown, err
		}
		applied = append(applied, orig{bind: bind, value: old})
	}
	return unknown, nil
}

// Values 读取指定参数
func (b Bindings) Values(names []string) map[string]maths.Vector {
	out := make(map[string]maths.Vector, len(names))
	for _, name := range names {
		if bind, ok := b[strings.ToLower(name)]; ok {
			out[name] = bind.Get().Clone()
		}
	}
	return out
}

// Assignment 构造参数赋值
type Assignment struct {
	Set   func(maths.Vector) error
	Value maths.Vector
}

// Assign 依次赋值，Value 为 nil 时保留默认值
func Assign(as ...Assignment) error {
	for _, a := range as {
		if a.Value == nil {
			continue
		}
		if err := a.Set(a.Value); err != nil {
			return err
		}
	}
	return nil
}
