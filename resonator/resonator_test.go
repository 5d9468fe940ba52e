package resonator

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"cpw/coupling"
	"cpw/line"
	"cpw/maths"
	"cpw/substrate"
	"cpw/types"
)

const (
	lineC  = 1e-12
	lineL1 = 1e-8
	ck     = 1e-15
	rl     = 30.
)

// lumped 集总传输线与简化耦合组成的谐振器
func lumped(t *testing.T, lineR float64) *Resonator {
	t.Helper()
	tl, err := line.NewSimplified(nil, maths.Scalar(lineC), maths.Scalar(lineR), maths.Scalar(lineL1))
	require.NoError(t, err)
	in, err := coupling.NewSimplified(maths.Scalar(rl), maths.Scalar(ck))
	require.NoError(t, err)
	out, err := coupling.NewSimplified(maths.Scalar(rl), maths.Scalar(ck))
	require.NoError(t, err)
	r, err := New(tl, in, out, substrate.DefaultEffective())
	require.NoError(t, err)
	return r
}

// TestLumpedClosedForm 与手工推导的集总公式一致
func TestLumpedClosedForm(t *testing.T) {
	const lineR = 1e4
	r := lumped(t, lineR)

	for _, n := range []int{1, 2} {
		ln := lineL1 / float64(n*n)
		wn := 1 / math.Sqrt(ln*lineC)
		k := wn * ck * rl
		cp := ck / (1 + k*k)
		rp := (1 + k*k) / (wn * wn * ck * ck * rl)

		w, err := r.ResonanceFrequency(n)
		require.NoError(t, err)
		assert.InEpsilon(t, 1/math.Sqrt(ln*(lineC+2*cp)), w.Float64(), 1e-12)

		qi, err := r.QualityFactorInternal(n)
		require.NoError(t, err)
		assert.InEpsilon(t, wn*lineR*lineC, qi.Float64(), 1e-12)

		qe, err := r.QualityFactorExternal(n)
		require.NoError(t, err)
		assert.InEpsilon(t, wn*rp/2*lineC, qe.Float64(), 1e-12)
	}
}

// TestQualityFactorParallel Q = 1/(1/Qi + 1/Qe)
func TestQualityFactorParallel(t *testing.T) {
	tl := line.DefaultGeometric()
	in := coupling.DefaultGap()
	out := coupling.DefaultFinger()
	r, err := New(tl, in, out, substrate.DefaultEffective())
	require.NoError(t, err)
	for n := 1; n <= 5; n++ {
		qi, err := r.QualityFactorInternal(n)
		require.NoError(t, err)
		qe, err := r.QualityFactorExternal(n)
		require.NoError(t, err)
		q, err := r.QualityFactor(n)
		require.NoError(t, err)
		assert.Equal(t, 1/(1/qi.Float64()+1/qe.Float64()), q.Float64())
	}
}

// TestIdempotent 相同状态下重复计算结果一致，元件变化后立即反映
func TestIdempotent(t *testing.T) {
	r := lumped(t, 1e4)
	a, err := r.ResonanceFrequency(1)
	require.NoError(t, err)
	b, err := r.ResonanceFrequency(1)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.NoError(t, r.InputCoupling().(*coupling.Simplified).SetCapacitance(maths.Scalar(1e-14)))
	c, err := r.ResonanceFrequency(1)
	require.NoError(t, err)
	assert.Less(t, c.Float64(), a.Float64())
}

// TestExternalQMonotonic 耦合电容增大外部品质因数单调减小
func TestExternalQMonotonic(t *testing.T) {
	r := lumped(t, 1e4)
	caps := maths.Logspace(1e-16, 1e-10, 60)
	require.NoError(t, r.InputCoupling().(*coupling.Simplified).SetCapacitance(caps))
	require.NoError(t, r.OutputCoupling().(*coupling.Simplified).SetCapacitance(caps))
	qe, err := r.QualityFactorExternal(1)
	require.NoError(t, err)
	require.Len(t, qe, len(caps))
	for i := 1; i < len(qe); i++ {
		assert.Less(t, qe[i], qe[i-1], "C=%g", caps[i])
	}
}

// TestABCDClosedForm 逐项展开 M_in·M_tl·M_out 与 S21
func TestABCDClosedForm(t *testing.T) {
	const lineR = 1e4
	r := lumped(t, lineR)
	w := .997e10

	xi := -1 / (w * ck)
	z0 := math.Pi / 2 * math.Sqrt(lineL1/lineC)
	gl := complex(z0/lineR, math.Pi*w*math.Sqrt(lineL1*lineC))
	ch, sh := cmplx.Cosh(gl), cmplx.Sinh(gl)
	jx := complex(0, xi)
	a := ch + jx*sh/complex(z0, 0)
	b := a*jx + complex(z0, 0)*sh + jx*ch
	c := sh / complex(z0, 0)
	d := c*jx + ch
	s21 := 2 / (a + b/rl + c*rl + d)

	m, err := r.ABCDMatrix(maths.Scalar(w))
	require.NoError(t, err)
	require.Len(t, m, 1)
	for _, pair := range [][2]complex128{{a, m[0].A()}, {b, m[0].B()}, {c, m[0].C()}, {d, m[0].D()}} {
		assert.True(t, cmplx.Abs(pair[0]-pair[1]) <= 1e-9*cmplx.Abs(pair[0]), "want %v got %v", pair[0], pair[1])
	}
	assert.True(t, cmplx.Abs(m[0].Det()-1) < 1e-9)

	got, err := r.S21(maths.Scalar(w))
	require.NoError(t, err)
	assert.True(t, cmplx.Abs(got[0]-s21) <= 1e-9*cmplx.Abs(s21))
}

// TestS21Peak 传输峰值位于负载谐振频率处
func TestS21Peak(t *testing.T) {
	const lineR = 1e6
	r := lumped(t, lineR)
	w0, err := r.ResonanceFrequency(1)
	require.NoError(t, err)

	w := maths.Linspace(.99e10, 1.01e10, 2001)
	s21, err := r.S21(w)
	require.NoError(t, err)
	require.Len(t, s21, len(w))
	mag := make([]float64, len(s21))
	for i, s := range s21 {
		mag[i] = cmplx.Abs(s)
	}
	i := floats.MaxIdx(mag)
	assert.True(t, scalar.EqualWithinRel(w[i], w0.Float64(), 1e-4), "peak %g, resonance %g", w[i], w0.Float64())
	assert.False(t, scalar.EqualWithinRel(w[i], 1e10, 5e-4), "peak should be pulled below the bare line resonance")

	qi, _ := r.QualityFactorInternal(1)
	qe, _ := r.QualityFactorExternal(1)
	assert.InDelta(t, 1/(1+qe.Float64()/qi.Float64()), mag[i], .01)
	assert.LessOrEqual(t, mag[i], 1.0)
}

func TestVectorFrequencies(t *testing.T) {
	r := lumped(t, 1e4)
	m, err := r.ABCDMatrix(maths.Of(.9e10, 1e10, 1.1e10))
	require.NoError(t, err)
	assert.Len(t, m, 3)

	require.NoError(t, r.InputCoupling().(*coupling.Simplified).SetCapacitance(maths.Of(1e-15, 2e-15)))
	_, err = r.S21(maths.Of(.9e10, 1e10, 1.1e10))
	assert.ErrorIs(t, err, types.ErrShapeMismatch)
}

// TestInvalidComponents nil 与带类型的 nil 元件被拒绝
func TestInvalidComponents(t *testing.T) {
	in, out := coupling.DefaultSimplified(), coupling.DefaultSimplified()
	_, err := New(nil, in, out, nil)
	assert.ErrorIs(t, err, types.ErrInvalidComponentType)
	_, err = New((*line.Simplified)(nil), in, out, nil)
	assert.ErrorIs(t, err, types.ErrInvalidComponentType)
	_, err = New(line.DefaultSimplified(), nil, out, nil)
	assert.ErrorIs(t, err, types.ErrInvalidComponentType)
	_, err = New(line.DefaultSimplified(), in, (*coupling.Gap)(nil), nil)
	assert.ErrorIs(t, err, types.ErrInvalidComponentType)

	r, err := New(line.DefaultSimplified(), in, out, (*substrate.Effective)(nil))
	require.NoError(t, err)
	assert.Nil(t, r.Substrate())

	tl := r.TransitionLine()
	assert.ErrorIs(t, r.SetTransitionLine(nil), types.ErrInvalidComponentType)
	assert.Same(t, tl, r.TransitionLine())
	assert.ErrorIs(t, r.SetInputCoupling((*coupling.Finger)(nil)), types.ErrInvalidComponentType)
	assert.ErrorIs(t, r.SetOutputCoupling(nil), types.ErrInvalidComponentType)
	assert.Same(t, in, r.InputCoupling())
}

// TestSubstratePropagation 任一元件替换后四者引用同一基板
func TestSubstratePropagation(t *testing.T) {
	sub := substrate.DefaultEffective()
	r, err := New(line.DefaultGeometric(), coupling.DefaultGap(), coupling.DefaultFinger(), sub)
	require.NoError(t, err)
	same := func(want substrate.Substrate) {
		t.Helper()
		assert.Equal(t, want, r.Substrate())
		assert.Equal(t, want, r.TransitionLine().Substrate())
		assert.Equal(t, want, r.InputCoupling().Substrate())
		assert.Equal(t, want, r.OutputCoupling().Substrate())
	}
	same(sub)

	require.NoError(t, r.SetTransitionLine(line.DefaultGeometric()))
	same(sub)
	require.NoError(t, r.SetInputCoupling(coupling.DefaultFinger()))
	require.NoError(t, r.SetOutputCoupling(coupling.DefaultGap()))
	same(sub)

	silicon, err := substrate.NewEffective(maths.Scalar(11.7), nil)
	require.NoError(t, err)
	before, err := r.ResonanceFrequency(1)
	require.NoError(t, err)
	r.SetSubstrate(silicon)
	same(silicon)
	after, err := r.ResonanceFrequency(1)
	require.NoError(t, err)
	assert.Less(t, after.Float64(), before.Float64())

	r.SetSubstrate(nil)
	same(nil)
	_, err = r.ResonanceFrequency(1)
	assert.ErrorIs(t, err, types.ErrMissingDependency)
}

func TestSelfConsistent(t *testing.T) {
	r := lumped(t, 1e4)
	first, err := r.ResonanceFrequency(1)
	require.NoError(t, err)
	w, err := r.ResonanceFrequencySelfConsistent(1)
	require.NoError(t, err)
	assert.InEpsilon(t, first.Float64(), w.Float64(), 1e-6)

	_, err = r.ResonanceFrequencySelfConsistent(1, WithMaxIterations(1), WithTolerance(1e-15))
	assert.ErrorIs(t, err, types.ErrNotConverged)
	_, err = r.ResonanceFrequencySelfConsistent(0)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}
