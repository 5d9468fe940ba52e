package types

import (
	"errors"
	"fmt"
)

// 错误分类
var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrInvalidComponentType = errors.New("invalid component type")
	ErrMissingDependency    = errors.New("missing dependency")
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrUnknownParameter     = errors.New("unknown parameter")
	ErrUnknownVariant       = errors.New("unknown variant")
	ErrNotConverged         = errors.New("not converged")
)

// ParameterError 参数校验失败
type ParameterError struct {
	Component string  // 元件名称
	Parameter string  // 参数名称
	Index     int     // 失败元素位置，标量为 -1
	Value     float64 // 失败值
	Reason    string  // 约束说明
}

func (e *ParameterError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s[%d] = %g: %s", e.Component, e.Parameter, e.Index, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s = %g: %s", e.Component, e.Parameter, e.Value, e.Reason)
}

// Unwrap 错误分类
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// MissingSubstrate 缺少基板
func MissingSubstrate(component string) error {
	return fmt.Errorf("%s: substrate not attached: %w", component, ErrMissingDependency)
}
