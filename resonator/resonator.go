// Package resonator 由传输线、输入输出耦合电容与基板组成的谐振器。
//
// 谐振器持有各元件的共享引用。任何元件被设置时，谐振器都会把当前基板
// 关联到传输线与两个耦合电容上，保证四者引用同一基板。
package resonator

import (
	"fmt"
	"math"
	"reflect"

	"cpw/coupling"
	"cpw/line"
	"cpw/maths"
	"cpw/substrate"
	"cpw/types"
)

// Resonator 谐振器
type Resonator struct {
	line      line.TransitionLine
	input     coupling.CapacitorCoupling
	output    coupling.CapacitorCoupling
	substrate substrate.Substrate
}

// New 创建谐振器，sub 可以为 nil
func New(tl line.TransitionLine, in, out coupling.CapacitorCoupling, sub substrate.Substrate) (*Resonator, error) {
	if err := component("transition line", tl); err != nil {
		return nil, err
	}
	if err := component("input coupling", in); err != nil {
		return nil, err
	}
	if err := component("output coupling", out); err != nil {
		return nil, err
	}
	r := &Resonator{line: tl, input: in, output: out, substrate: absent(sub)}
	r.attach()
	return r, nil
}

// component 拒绝 nil 与带类型的 nil 元件
func component(role string, c any) error {
	if c == nil {
		return fmt.Errorf("%s is nil: %w", role, types.ErrInvalidComponentType)
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%s is a nil %T: %w", role, c, types.ErrInvalidComponentType)
	}
	return nil
}

// absent 带类型的 nil 基板视为未设置
func absent(sub substrate.Substrate) substrate.Substrate {
	if sub == nil {
		return nil
	}
	if v := reflect.ValueOf(sub); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return sub
}

// attach 把当前基板关联到所有元件
func (r *Resonator) attach() {
	r.line.AttachSubstrate(r.substrate)
	r.input.AttachSubstrate(r.substrate)
	r.output.AttachSubstrate(r.substrate)
}

func (r *Resonator) TransitionLine() line.TransitionLine        { return r.line }
func (r *Resonator) InputCoupling() coupling.CapacitorCoupling  { return r.input }
func (r *Resonator) OutputCoupling() coupling.CapacitorCoupling { return r.output }
func (r *Resonator) Substrate() substrate.Substrate             { return r.substrate }

// SetTransitionLine 替换传输线
func (r *Resonator) SetTransitionLine(tl line.TransitionLine) error {
	if err := component("transition line", tl); err != nil {
		return err
	}
	r.line = tl
	r.attach()
	return nil
}

// SetInputCoupling 替换输入耦合
func (r *Resonator) SetInputCoupling(c coupling.CapacitorCoupling) error {
	if err := component("input coupling", c); err != nil {
		return err
	}
	r.input = c
	r.attach()
	return nil
}

// SetOutputCoupling 替换输出耦合
func (r *Resonator) SetOutputCoupling(c coupling.CapacitorCoupling) error {
	if err := component("output coupling", c); err != nil {
		return err
	}
	r.output = c
	r.attach()
	return nil
}

// SetSubstrate 替换基板，nil 表示移除
func (r *Resonator) SetSubstrate(sub substrate.Substrate) {
	r.substrate = absent(sub)
	r.attach()
}

// ResonanceFrequency 第 n 阶谐振角频率。
// 耦合电容在传输线自身谐振频率 w_n 处取值（一阶修正）。
func (r *Resonator) ResonanceFrequency(n int) (maths.Vector, error) {
	w, err := r.line.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	return r.loaded(n, w)
}

// loaded 以耦合电容在 w 处的并联等效值计算负载谐振频率
func (r *Resonator) loaded(n int, w maths.Vector) (maths.Vector, error) {
	ln, err := r.line.ParallelInductance(n)
	if err != nil {
		return nil, err
	}
	c, err := r.line.ParallelCapacitance()
	if err != nil {
		return nil, err
	}
	cin, err := r.input.ParallelCapacitance(w)
	if err != nil {
		return nil, err
	}
	cout, err := r.output.ParallelCapacitance(w)
	if err != nil {
		return nil, err
	}
	return maths.Map(func(i int) float64 {
		return 1 / math.Sqrt(ln.At(i)*(c.At(i)+cin.At(i)+cout.At(i)))
	}, ln, c, cin, cout)
}

// QualityFactorInternal 内部品质因数
func (r *Resonator) QualityFactorInternal(n int) (maths.Vector, error) {
	return r.line.QualityFactor(n)
}

// QualityFactorExternal 外部品质因数 w_n·(R_in ∥ R_out)·C
func (r *Resonator) QualityFactorExternal(n int) (maths.Vector, error) {
	w, err := r.line.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	c, err := r.line.ParallelCapacitance()
	if err != nil {
		return nil, err
	}
	rin, err := r.input.ParallelResistance(w)
	if err != nil {
		return nil, err
	}
	rout, err := r.output.ParallelResistance(w)
	if err != nil {
		return nil, err
	}
	return maths.Map(func(i int) float64 {
		return w.At(i) * (1 / (1/rin.At(i) + 1/rout.At(i))) * c.At(i)
	}, w, c, rin, rout)
}

// QualityFactor 总品质因数 1/(1/Qi + 1/Qe)
func (r *Resonator) QualityFactor(n int) (maths.Vector, error) {
	qi, err := r.QualityFactorInternal(n)
	if err != nil {
		return nil, err
	}
	qe, err := r.QualityFactorExternal(n)
	if err != nil {
		return nil, err
	}
	return maths.Map(func(i int) float64 { return 1 / (1/qi.At(i) + 1/qe.At(i)) }, qi, qe)
}
