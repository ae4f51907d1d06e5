package tensor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/Hecramco/mlpgrad/internal/tensor"
)

func TestNewVector_RejectsNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1, -5} {
		_, err := tensor.NewVector(n)
		assert.Error(t, err, "length %d", n)
	}
}

func TestFromSlice_CopiesData(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := tensor.FromSlice(src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, v.At(0), "vector must not alias the caller's slice")
}

func TestNewMatrix_RejectsNonPositiveDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -1}} {
		_, err := tensor.NewMatrix(dims[0], dims[1])
		assert.Error(t, err, "shape %v", dims)
	}
}

func TestMatrixFromRows_RejectsRaggedRows(t *testing.T) {
	_, err := tensor.MatrixFromRows([][]float64{{1, 2}, {3}})
	require.Error(t, err)

	var shapeErr *tensor.ShapeError
	assert.True(t, errors.As(err, &shapeErr), "ragged rows should be a *ShapeError")
}

func TestDot_LengthMismatch(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2, 3})
	b, _ := tensor.FromSlice([]float64{1, 2})

	_, err := a.Dot(b)
	require.Error(t, err)

	var shapeErr *tensor.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "Dot", shapeErr.Op)
	assert.Contains(t, err.Error(), "(3)")
	assert.Contains(t, err.Error(), "(2)")
}

func TestDot_And_MulElem_AreDistinct(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2, 3})
	b, _ := tensor.FromSlice([]float64{4, 5, 6})

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	had, err := a.MulElem(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, had.Data())
}

func TestMulVecT(t *testing.T) {
	// m is 2×3, so MulVecT maps a length-2 vector to length 3.
	m, err := tensor.MatrixFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	x, _ := tensor.FromSlice([]float64{1, 2})
	z, err := m.MulVecT(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12, 15}, z.Data())

	// Wrong input length is rejected before any arithmetic.
	bad, _ := tensor.FromSlice([]float64{1, 2, 3})
	_, err = m.MulVecT(bad)
	var shapeErr *tensor.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "MulVecT", shapeErr.Op)
}

func TestOuter_Shape(t *testing.T) {
	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4})
	y, _ := tensor.FromSlice([]float64{10, 20})

	m := tensor.Outer(x, y)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 2, m.Cols())
	assert.Equal(t, 40.0, m.At(1, 1))
	assert.Equal(t, 80.0, m.At(3, 1))
}

func TestClone_Independence(t *testing.T) {
	v, _ := tensor.FromSlice([]float64{1, 2})
	c := v.Clone()
	c.Set(0, 42)
	assert.Equal(t, 1.0, v.At(0))

	m, _ := tensor.MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	mc := m.Clone()
	mc.Set(0, 0, 42)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestHasNaNOrInf(t *testing.T) {
	nan, _ := tensor.FromSlice([]float64{1, math.NaN(), 3})
	assert.True(t, nan.HasNaNOrInf())

	inf, _ := tensor.MatrixFromRows([][]float64{{1, math.Inf(1)}})
	assert.True(t, inf.HasNaNOrInf())

	ok, _ := tensor.FromSlice([]float64{1, 2, 3})
	assert.False(t, ok.HasNaNOrInf())
}

func TestRandn_SeededReproducibility(t *testing.T) {
	a, err := tensor.Randn(16, rand.NewSource(7))
	require.NoError(t, err)
	b, err := tensor.Randn(16, rand.NewSource(7))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "identically seeded sources must draw identical vectors")

	c, err := tensor.Randn(16, rand.NewSource(8))
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should draw different vectors")
}

func TestRandnMatrix_SeededReproducibility(t *testing.T) {
	a, err := tensor.RandnMatrix(3, 5, rand.NewSource(7))
	require.NoError(t, err)
	b, err := tensor.RandnMatrix(3, 5, rand.NewSource(7))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestOnes(t *testing.T) {
	v, err := tensor.Ones(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, v.Data())
}
