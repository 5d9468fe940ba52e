package cpw

import (
	"math"

	"cpw/coupling"
	"cpw/maths"
)

// LineSummary 传输线取值
type LineSummary struct {
	ParallelCapacitance maths.Vector `json:"parallel_capacitance"`
	ParallelResistance  maths.Vector `json:"parallel_resistance"`
	ParallelInductance  maths.Vector `json:"parallel_inductance"`
	QualityFactor       maths.Vector `json:"q"`
	FrequencyGHz        maths.Vector `json:"f_n_ghz"` // 传输线自身谐振频率
}

// CouplingSummary 耦合电容取值，均在谐振频率处计算
type CouplingSummary struct {
	Capacitance              maths.Vector `json:"capacitance"` // 并联等效电容
	ParallelResistance       maths.Vector `json:"parallel_resistance"`
	ParallelResistanceApprox maths.Vector `json:"parallel_resistance_approx"`
	KFactor                  maths.Vector `json:"k_factor"` // 占总电容的比例
}

// SubstrateSummary 基板取值
type SubstrateSummary struct {
	Permittivity maths.Vector `json:"permittivity,omitempty"`
	Permeability maths.Vector `json:"permeability,omitempty"`
}

// Summary 第 n 阶模式计算结果
type Summary struct {
	Mode             int              `json:"n"`
	AngularFrequency maths.Vector     `json:"w_n"`
	Frequency        maths.Vector     `json:"f_n"`
	QInternal        maths.Vector     `json:"q_internal"`
	QExternal        maths.Vector     `json:"q_external"`
	QTotal           maths.Vector     `json:"q_total"`
	TransitionLine   LineSummary      `json:"transition_line"`
	InputCoupling    CouplingSummary  `json:"input_coupling"`
	OutputCoupling   CouplingSummary  `json:"output_coupling"`
	Substrate        SubstrateSummary `json:"substrate"`
	Selection        Selection        `json:"selection"`
}

// Summary 计算第 n 阶模式，n 超出范围时截断
func (d *Design) Summary(n int) (*Summary, error) {
	n = ClampMode(n)
	r := d.resonator
	tl := r.TransitionLine()

	s := &Summary{Mode: n, Selection: d.selection}
	var err error
	if s.AngularFrequency, err = r.ResonanceFrequency(n); err != nil {
		return nil, err
	}
	s.Frequency = scale(s.AngularFrequency, 1/(2*math.Pi))
	if s.QInternal, err = r.QualityFactorInternal(n); err != nil {
		return nil, err
	}
	if s.QExternal, err = r.QualityFactorExternal(n); err != nil {
		return nil, err
	}
	if s.QTotal, err = r.QualityFactor(n); err != nil {
		return nil, err
	}

	if s.TransitionLine.ParallelCapacitance, err = tl.ParallelCapacitance(); err != nil {
		return nil, err
	}
	if s.TransitionLine.ParallelResistance, err = tl.ParallelResistance(); err != nil {
		return nil, err
	}
	if s.TransitionLine.ParallelInductance, err = tl.ParallelInductance(n); err != nil {
		return nil, err
	}
	if s.TransitionLine.QualityFactor, err = tl.QualityFactor(n); err != nil {
		return nil, err
	}
	bare, err := tl.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	s.TransitionLine.FrequencyGHz = scale(bare, 1/(2*math.Pi*1e9))

	w := s.AngularFrequency
	cin, err := r.InputCoupling().ParallelCapacitance(w)
	if err != nil {
		return nil, err
	}
	cout, err := r.OutputCoupling().ParallelCapacitance(w)
	if err != nil {
		return nil, err
	}
	total, err := maths.Map(func(i int) float64 {
		return s.TransitionLine.ParallelCapacitance.At(i) + cin.At(i) + cout.At(i)
	}, s.TransitionLine.ParallelCapacitance, cin, cout)
	if err != nil {
		return nil, err
	}
	if s.InputCoupling, err = couplingSummary(r.InputCoupling(), w, cin, total); err != nil {
		return nil, err
	}
	if s.OutputCoupling, err = couplingSummary(r.OutputCoupling(), w, cout, total); err != nil {
		return nil, err
	}
	if sub := r.Substrate(); sub != nil {
		s.Substrate = SubstrateSummary{Permittivity: sub.Permittivity(), Permeability: sub.Permeability()}
	}
	return s, nil
}

func couplingSummary(c coupling.CapacitorCoupling, w, cp, total maths.Vector) (CouplingSummary, error) {
	out := CouplingSummary{Capacitance: cp}
	var err error
	if out.ParallelResistance, err = c.ParallelResistance(w); err != nil {
		return out, err
	}
	if out.ParallelResistanceApprox, err = ParallelResistanceApprox(c, w); err != nil {
		return out, err
	}
	out.KFactor, err = maths.Map(func(i int) float64 { return cp.At(i) / total.At(i) }, cp, total)
	return out, err
}

// 渐近线切换区间 w·C·R ∈ [blendLow, blendHigh]
const (
	blendLow  = .5
	blendHigh = 5
)

// ParallelResistanceApprox 并联等效电阻的渐近近似。
// w·C·R < 0.5 取 1/(w²C²R)，> 5 取 R，中间按 log(w·C·R) 线性插值。
func ParallelResistanceApprox(c coupling.CapacitorCoupling, w maths.Vector) (maths.Vector, error) {
	ck, err := c.Capacitance()
	if err != nil {
		return nil, err
	}
	rl := c.Resistance()
	return maths.Map(func(i int) float64 {
		wi, cki, rli := w.At(i), ck.At(i), rl.At(i)
		low := 1 / (wi * wi * cki * cki * rli)
		k := math.Abs(wi * cki * rli)
		switch {
		case k < blendLow:
			return low
		case k > blendHigh:
			return rli
		}
		t := (math.Log(k) - math.Log(blendLow)) / (math.Log(blendHigh) - math.Log(blendLow))
		return low*(1-t) + rli*t
	}, w, ck, rl)
}

func scale(v maths.Vector, f float64) maths.Vector {
	out := make(maths.Vector, len(v))
	for i, x := range v {
		out[i] = x * f
	}
	return out
}
