package maths

import (
	"encoding/json"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"cpw/types"
)

// TestBroadcast 标量与任意长度广播，不同长度的数组报错
func TestBroadcast(t *testing.T) {
	n, err := Broadcast(Scalar(1), Of(1, 2, 3), Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Broadcast(Of(1, 2), Of(1, 2, 3))
	assert.ErrorIs(t, err, types.ErrShapeMismatch)
	_, err = Broadcast(Vector{})
	assert.ErrorIs(t, err, types.ErrShapeMismatch)

	v, err := Map(func(i int) float64 { return Scalar(10).At(i) + Of(1, 2).At(i) }, Scalar(10), Of(1, 2))
	require.NoError(t, err)
	assert.Equal(t, Vector{11, 12}, v)

	c, err := MapC(func(i int) complex128 { return complex(Of(1, 2).At(i), 1) }, Of(1, 2))
	require.NoError(t, err)
	assert.Equal(t, Vector{1, 2}, c.Real())
	assert.Equal(t, Vector{1, 1}, c.Imag())
}

func TestSpace(t *testing.T) {
	assert.Equal(t, Vector{0, .5, 1}, Linspace(0, 1, 3))
	assert.Equal(t, Vector{3}, Linspace(3, 4, 1))
	lg := Logspace(1, 100, 3)
	assert.InEpsilon(t, 10, lg[1], 1e-12)
}

// TestMatrix2 互易无源二端口的行列式为 1
func TestMatrix2(t *testing.T) {
	m := Cascade(
		SeriesImpedance(complex(0, -120)),
		Line(complex(1e-3, 2.1), 50),
		SeriesImpedance(complex(0, -80)),
	)
	assert.True(t, cmplx.Abs(m.Det()-1) < 1e-12)

	assert.Equal(t, Identity2(), Cascade())
	z := SeriesImpedance(5)
	y := ShuntAdmittance(.1)
	zy := z.Mul(y)
	assert.Equal(t, complex128(1.5), zy.A())
	assert.Equal(t, complex128(5), zy.B())
	assert.Equal(t, complex128(.1), zy.C())
	assert.Equal(t, complex128(1), zy.D())
}

// TestEllipticRatio K(k)/K(k') 与 K(k')/K(k) 互为倒数
func TestEllipticRatio(t *testing.T) {
	assert.InEpsilon(t, 1, EllipticRatio(math.Sqrt(.5)), 1e-12)
	for _, k := range []float64{.1, 1. / 3, .6, .9} {
		kp := math.Sqrt(1 - k*k)
		assert.True(t, scalar.EqualWithinRel(EllipticRatio(k)*EllipticRatio(kp), 1, 1e-10), "k=%g", k)
	}
	assert.Less(t, EllipticRatio(.2), EllipticRatio(.8))
}

func TestVectorJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		S Vector `json:"s"`
		A Vector `json:"a"`
	}{Scalar(1.5), Of(math.Inf(1), 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":1.5,"a":["+Inf",2]}`, string(b))

	var v Vector
	require.NoError(t, json.Unmarshal([]byte(`["+Inf", 1e-15, "4e-15"]`), &v))
	assert.True(t, math.IsInf(v[0], 1))
	assert.Equal(t, Vector{1e-15, 4e-15}, v[1:])
	require.NoError(t, json.Unmarshal([]byte(`3`), &v))
	assert.Equal(t, Vector{3}, v)
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
}
