package sweep

import (
	"fmt"
	"math"
	"math/cmplx"

	"cpw/coupling"
	"cpw/maths"
	"cpw/resonator"
	"cpw/types"
)

// 曲线名称
const (
	Magnitude = "|S21|"
	Phase     = "arg S21"
	Frequency = "f_n"
	LoadedQ   = "Q_L"
	ExternalQ = "Q_e"
	CouplingK = "k"
)

// 单位
const (
	GHz        = 1e9
	FemtoFarad = 1e-15
)

// 频率扫描默认值
var (
	DefaultSpan   = 5e-3 // 相对宽度
	DefaultPoints = 1001
)

// Frequencies 按角频率扫描 S21，横轴为 GHz
func Frequencies(r *resonator.Resonator, w maths.Vector) (*Record, error) {
	s21, err := r.S21(w)
	if err != nil {
		return nil, err
	}
	rec := &Record{Title: "S21", XName: "f", XUnit: "GHz", X: make(maths.Vector, len(s21))}
	mag := make(maths.Vector, len(s21))
	phase := make(maths.Vector, len(s21))
	for i, s := range s21 {
		rec.X[i] = w.At(i) / (2 * math.Pi * GHz)
		mag[i] = 20 * math.Log10(cmplx.Abs(s))
		phase[i] = cmplx.Phase(s) * 180 / math.Pi
	}
	if err := rec.Add(Magnitude, "dB", mag); err != nil {
		return nil, err
	}
	if err := rec.Add(Phase, "deg", phase); err != nil {
		return nil, err
	}
	return rec, nil
}

// Around 以第 n 阶谐振频率为中心、相对宽度 span 扫描 points 点
func Around(r *resonator.Resonator, n int, span float64, points int) (*Record, error) {
	w0, err := r.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	if !w0.IsScalar() {
		return nil, fmt.Errorf("中心频率必须为标量，得到 %d 个值: %w", w0.Len(), types.ErrShapeMismatch)
	}
	if span <= 0 || span >= 1 {
		return nil, fmt.Errorf("相对扫描宽度无效: %g", span)
	}
	c := w0.Float64()
	return Frequencies(r, maths.Linspace(c*(1-span), c*(1+span), points))
}

// Coupling 以简化耦合电容的电容值扫描谐振器，输入输出耦合取相同电容。
// 传输线与基板沿用 r 的元件，耦合电阻沿用 r 的输入耦合。
func Coupling(r *resonator.Resonator, n int, capacitance maths.Vector) (*Record, error) {
	rc, err := withCapacitance(r, capacitance)
	if err != nil {
		return nil, err
	}
	w, err := rc.ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	ql, err := rc.QualityFactor(n)
	if err != nil {
		return nil, err
	}
	qe, err := rc.QualityFactorExternal(n)
	if err != nil {
		return nil, err
	}
	bare, err := rc.TransitionLine().ResonanceFrequency(n)
	if err != nil {
		return nil, err
	}
	k, err := rc.InputCoupling().KFactor(bare)
	if err != nil {
		return nil, err
	}
	size, err := maths.Broadcast(capacitance, w, ql, qe, k)
	if err != nil {
		return nil, err
	}
	rec := &Record{Title: fmt.Sprintf("mode %d vs coupling", n), XName: "C_k", XUnit: "fF", X: make(maths.Vector, size)}
	f := make(maths.Vector, size)
	for i := range rec.X {
		rec.X[i] = capacitance.At(i) / FemtoFarad
		f[i] = w.At(i) / (2 * math.Pi * GHz)
	}
	for _, s := range []Series{
		{Name: Frequency, Unit: "GHz", Y: f},
		{Name: LoadedQ, Y: broadcast(ql, size)},
		{Name: ExternalQ, Y: broadcast(qe, size)},
		{Name: CouplingK, Y: broadcast(k, size)},
	} {
		if err := rec.Add(s.Name, s.Unit, s.Y); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// CouplingRange 在简化耦合电容的取值范围内均匀扫描
func CouplingRange(r *resonator.Resonator, n, points int) (*Record, error) {
	return Coupling(r, n, coupling.CapacitanceRange.Span(points))
}

func withCapacitance(r *resonator.Resonator, capacitance maths.Vector) (*resonator.Resonator, error) {
	resistance := r.InputCoupling().Resistance()
	in, err := coupling.NewSimplified(resistance, capacitance)
	if err != nil {
		return nil, err
	}
	out, err := coupling.NewSimplified(resistance, capacitance)
	if err != nil {
		return nil, err
	}
	return resonator.New(r.TransitionLine(), in, out, r.Substrate())
}

func broadcast(v maths.Vector, n int) maths.Vector {
	out := make(maths.Vector, n)
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}
