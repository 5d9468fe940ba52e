package substrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpw/maths"
	"cpw/types"
)

func TestEffective(t *testing.T) {
	sub := DefaultEffective()
	assert.InEpsilon(t, 5.05*maths.Epsilon0, sub.Permittivity().Float64(), 1e-12)
	assert.InEpsilon(t, maths.Mu0, sub.Permeability().Float64(), 1e-12)

	sub, err := NewEffective(maths.Of(1, 11.7), nil)
	require.NoError(t, err)
	assert.InEpsilonSlice(t, []float64{maths.Epsilon0, 11.7 * maths.Epsilon0}, sub.Permittivity(), 1e-12)
	assert.Len(t, sub.Permeability(), 1)
}

// TestEffectiveInvalid 失败的设置不修改原值
func TestEffectiveInvalid(t *testing.T) {
	sub := DefaultEffective()
	err := sub.SetRelativePermittivity(maths.Of(2, 0))
	require.ErrorIs(t, err, types.ErrInvalidParameter)
	assert.Equal(t, maths.Vector{5.05}, sub.RelativePermittivity())
	assert.ErrorIs(t, sub.SetRelativePermeability(maths.Scalar(-1)), types.ErrInvalidParameter)

	_, err = NewEffective(maths.Scalar(-1), nil)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{"effective"}, Variants())
	sub, unknown, err := Catalog.New("effective", map[string]maths.Vector{"permittivity": maths.Scalar(9)})
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, "EffectiveSubstrate", sub.TypeName())
	assert.InEpsilon(t, 9*maths.Epsilon0, sub.Permittivity().Float64(), 1e-12)
	assert.Contains(t, sub.Parameters(), "relative_permittivity")
}

// TestGetterCopies 修改读取结果不影响基板
func TestGetterCopies(t *testing.T) {
	sub := DefaultEffective()
	sub.RelativePermittivity()[0] = -3
	sub.RelativePermeability()[0] = 0
	assert.Equal(t, maths.Vector{5.05}, sub.RelativePermittivity())
	assert.Equal(t, maths.Vector{1}, sub.RelativePermeability())
	assert.InEpsilon(t, 5.05*maths.Epsilon0, sub.Permittivity().Float64(), 1e-12)

	delete(sub.Parameters(), "relative_permittivity")
	assert.Contains(t, EffectiveParameters, "relative_permittivity")
}
