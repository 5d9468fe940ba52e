package line

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpw/maths"
	"cpw/substrate"
	"cpw/types"
)

// TestSimplified 集总参数的谐振频率与品质因数
func TestSimplified(t *testing.T) {
	l, err := NewSimplified(nil, maths.Scalar(1e-12), maths.Scalar(50), maths.Scalar(1e-8))
	require.NoError(t, err)

	for _, n := range []int{1, 2, 7} {
		ln, err := l.ParallelInductance(n)
		require.NoError(t, err)
		assert.InEpsilon(t, 1e-8/float64(n*n), ln.Float64(), 1e-12)

		w, err := l.ResonanceFrequency(n)
		require.NoError(t, err)
		assert.InEpsilon(t, float64(n)*1e10, w.Float64(), 1e-12)

		q, err := l.QualityFactor(n)
		require.NoError(t, err)
		assert.InEpsilon(t, float64(n)*1e10*50*1e-12, q.Float64(), 1e-12)
	}

	_, err = l.ResonanceFrequency(0)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

// TestSimplifiedABCD 等效半波长线在基模处 βl = π，损耗与并联电阻一致
func TestSimplifiedABCD(t *testing.T) {
	l, err := NewSimplified(nil, maths.Scalar(1e-12), maths.Scalar(1e4), maths.Scalar(1e-8))
	require.NoError(t, err)
	w1, _ := l.ResonanceFrequency(1)
	g, err := l.Gamma(w1)
	require.NoError(t, err)
	z0, err := l.Z0()
	require.NoError(t, err)
	gl := g[0] * complex(l.Length().Float64(), 0)
	assert.InEpsilon(t, math.Pi, imag(gl), 1e-12)
	assert.InEpsilon(t, z0.Float64()/1e4, real(gl), 1e-12)
	assert.InEpsilon(t, math.Pi/2*100, z0.Float64(), 1e-12)
}

func TestDistributed(t *testing.T) {
	l, err := NewDistributed(maths.Scalar(.02), maths.Scalar(1.6e-10), maths.Scalar(4e-7), maths.Scalar(2e-4))
	require.NoError(t, err)

	c, err := l.ParallelCapacitance()
	require.NoError(t, err)
	assert.InEpsilon(t, 1.6e-10*.02/2, c.Float64(), 1e-12)

	ln, err := l.ParallelInductance(2)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*4e-7*.02/(4*math.Pi*math.Pi), ln.Float64(), 1e-12)

	z0, err := l.Z0()
	require.NoError(t, err)
	assert.InEpsilon(t, 50, z0.Float64(), 1e-12)

	r, err := l.ParallelResistance()
	require.NoError(t, err)
	assert.InEpsilon(t, 50/(2e-4*.02), r.Float64(), 1e-12)

	// 第 n 阶谐振对应 βl = nπ
	for _, n := range []int{1, 3} {
		w, err := l.ResonanceFrequency(n)
		require.NoError(t, err)
		g, err := l.Gamma(w)
		require.NoError(t, err)
		assert.InEpsilon(t, float64(n)*math.Pi, imag(g[0])*.02, 1e-12)
		assert.Equal(t, 2e-4, real(g[0]))
	}
}

// TestZeroAttenuation 无损极限为 +Inf 而不是错误
func TestZeroAttenuation(t *testing.T) {
	l := DefaultDistributed()
	require.NoError(t, l.SetAttenuationConstant(maths.Scalar(0)))
	r, err := l.ParallelResistance()
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.Float64(), 1))
	q, err := l.QualityFactor(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Float64(), 1))

	assert.ErrorIs(t, l.SetAttenuationConstant(maths.Scalar(-1e-4)), types.ErrInvalidParameter)
}

func TestGeometric(t *testing.T) {
	l := DefaultGeometric()
	_, err := l.ParallelCapacitance()
	assert.ErrorIs(t, err, types.ErrMissingDependency)
	_, err = l.ResonanceFrequency(1)
	assert.ErrorIs(t, err, types.ErrMissingDependency)
	_, err = l.Z0()
	assert.ErrorIs(t, err, types.ErrMissingDependency)

	sub := substrate.DefaultEffective()
	l.AttachSubstrate(sub)
	assert.Same(t, sub, l.Substrate())

	er := maths.EllipticRatio(1e-5 / 3e-5)
	cpl, err := l.CapacitancePerLength()
	require.NoError(t, err)
	assert.InEpsilon(t, 4*5.05*maths.Epsilon0*er, cpl.Float64(), 1e-12)
	ipl, err := l.InductancePerLength()
	require.NoError(t, err)
	assert.InEpsilon(t, maths.Mu0/(4*er), ipl.Float64(), 1e-12)

	// 相速度 1/sqrt(L'C') = c/sqrt(εr)
	w, err := l.ResonanceFrequency(1)
	require.NoError(t, err)
	v := 1 / math.Sqrt(cpl.Float64()*ipl.Float64())
	assert.InEpsilon(t, math.Pi*v/28.449e-3, w.Float64(), 1e-12)
	assert.InEpsilon(t, 1/math.Sqrt(maths.Epsilon0*maths.Mu0*5.05), v, 1e-9)
}

// TestArrayParameters 数组参数逐元素计算，长度不一致时报错
func TestArrayParameters(t *testing.T) {
	l, err := NewDistributed(maths.Of(.01, .02, .04), nil, nil, nil)
	require.NoError(t, err)
	w, err := l.ResonanceFrequency(1)
	require.NoError(t, err)
	require.Len(t, w, 3)
	assert.InEpsilon(t, 2, w[0]/w[1], 1e-12)
	assert.InEpsilon(t, 2, w[1]/w[2], 1e-12)

	require.NoError(t, l.SetCapacitancePerLength(maths.Of(1e-11, 2e-11)))
	_, err = l.ResonanceFrequency(1)
	assert.ErrorIs(t, err, types.ErrShapeMismatch)

	err = l.SetLength(maths.Of(.01, -1))
	var pe *types.ParameterError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)
	assert.Equal(t, maths.Vector{.01, .02, .04}, l.Length())
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{"simplified", "distributed", "geometric"}, Variants())

	l, unknown, err := Catalog.New("simplified", map[string]maths.Vector{
		"inductance": maths.Scalar(2e-8),
		"finger":     maths.Scalar(1),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"finger"}, unknown)
	assert.Equal(t, maths.Vector{2e-8}, l.(*Simplified).BaseInductance())

	for _, name := range Variants() {
		v, err := Catalog.Lookup(name)
		require.NoError(t, err)
		assert.Contains(t, v.Parameters, "length")
		assert.Equal(t, v.TypeName, v.New().TypeName())
	}
	assert.Contains(t, GeometricParameters, "attenuation_constant")
	assert.Equal(t, LengthRange, SimplifiedParameters["length"])
}

// TestGetterCopies 修改读取结果不影响传输线
func TestGetterCopies(t *testing.T) {
	s := DefaultSimplified()
	s.Length()[0], s.Capacitance()[0], s.Resistance()[0], s.BaseInductance()[0] = -1, -1, -1, -1
	assert.Equal(t, maths.Vector{28.449e-3}, s.Length())
	assert.Equal(t, maths.Vector{1e-14}, s.Capacitance())
	assert.Equal(t, maths.Vector{50}, s.Resistance())
	assert.Equal(t, maths.Vector{1e-8}, s.BaseInductance())

	d := DefaultDistributed()
	d.CapacitancePerLength()[0], d.InductancePerLength()[0], d.AttenuationConstant()[0] = -1, -1, -1
	assert.Equal(t, maths.Vector{1e-11}, d.CapacitancePerLength())
	assert.Equal(t, maths.Vector{1e-6}, d.InductancePerLength())
	assert.Equal(t, maths.Vector{2.4e-4}, d.AttenuationConstant())

	g := DefaultGeometric()
	g.Width()[0], g.Separation()[0], g.AttenuationConstant()[0] = -1, -1, -1
	assert.Equal(t, maths.Vector{1e-5}, g.Width())
	assert.Equal(t, maths.Vector{1e-5}, g.Separation())
	assert.Equal(t, maths.Vector{2.4e-4}, g.AttenuationConstant())
	g.Bindings()["width"].Get()[0] = -1
	assert.Equal(t, maths.Vector{1e-5}, g.Width())

	delete(g.Parameters(), "width")
	assert.Contains(t, GeometricParameters, "width")
}
