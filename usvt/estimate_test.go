// SPDX-License-Identifier: MIT
package usvt_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/graphon/matrix"
	"github.com/katalvlaran/graphon/usvt"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTwoVertexScenario: [[0,1],[1,0]] has singular values [1,1], both below 2.1·√2.
func TestTwoVertexScenario(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	res, err := usvt.EstimateMatrix(a, usvt.WithEta(0.1))
	require.NoError(t, err)

	assert.Equal(t, 2.1*math.Sqrt(2), res.Threshold)
	assert.InDelta(t, 2.9698, res.Threshold, 1e-4)
	assert.InDeltaSlice(t, []float64{1, 1}, res.SingularValues, 1e-12)
	assert.Equal(t, 0, res.Rank)
	assert.Empty(t, res.Retained)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, res.Probability.ToRows())
}

func TestEstimateZeroMatrix(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewDense(6, 6)
	require.NoError(t, err)
	res, err := usvt.EstimateMatrix(z)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rank)
	assert.Equal(t, z.ToRows(), res.Probability.ToRows())
}

// TestEstimateCompleteGraph: K_n has singular values n-1, 1, …, 1, so only the
// leading triplet survives and every entry of the estimate is (n-1)/n.
func TestEstimateCompleteGraph(t *testing.T) {
	t.Parallel()

	const n = 10
	res, err := usvt.EstimateMatrix(complete(t, n))
	require.NoError(t, err)
	require.Equal(t, 1, res.Rank)
	require.Equal(t, []int{0}, res.Retained)
	assert.InDelta(t, n-1, res.SingularValues[0], 1e-9)

	for _, row := range res.Probability.ToRows() {
		for _, v := range row {
			assert.InDelta(t, float64(n-1)/n, v, 1e-9)
		}
	}
}

func TestEstimateProperties(t *testing.T) {
	t.Parallel()

	const n = 40
	a := blockAdjacency(t, n, 0.7, 0.2, 1)
	for _, eta := range []float64{1e-6, 0.01, 0.1, 0.5, 0.999} {
		res, err := usvt.EstimateMatrix(a, usvt.WithEta(eta))
		require.NoError(t, err)

		assert.Equal(t, (2+eta)*math.Sqrt(n), res.Threshold)
		require.Len(t, res.SingularValues, n)
		for i := 1; i < n; i++ {
			require.GreaterOrEqual(t, res.SingularValues[i-1], res.SingularValues[i])
		}
		require.GreaterOrEqual(t, res.SingularValues[n-1], 0.0)
		assert.Equal(t, len(res.Retained), res.Rank)
		assert.Equal(t, eta, res.Eta)
		assert.Equal(t, 1, res.Observations)
		require.Equal(t, n, res.Probability.Rows())
		requireInUnitRange(t, res.Probability)
	}
}

// TestEstimateCopiesMatchSingle: k copies of A give exactly the estimate of A.
func TestEstimateCopiesMatchSingle(t *testing.T) {
	t.Parallel()

	a := blockAdjacency(t, 30, 0.8, 0.1, 3)
	single, err := usvt.EstimateMatrix(a)
	require.NoError(t, err)
	many, err := usvt.EstimateCollection([]matrix.Matrix{a, a, a, a})
	require.NoError(t, err)

	assert.Equal(t, 4, many.Observations)
	assert.Equal(t, single.SingularValues, many.SingularValues)
	assert.Equal(t, single.Retained, many.Retained)
	assert.Equal(t, single.Probability.ToRows(), many.Probability.ToRows())
}

func TestEstimateTwoBlocks(t *testing.T) {
	t.Parallel()

	res, err := usvt.EstimateMatrix(blockAdjacency(t, 60, 0.9, 0.05, 5))
	require.NoError(t, err)
	require.Equal(t, 2, res.Rank)
	require.Equal(t, []int{0, 1}, res.Retained)

	// Within-block estimates dominate cross-block ones.
	in, _ := res.Probability.At(0, 1)
	across, _ := res.Probability.At(0, 59)
	assert.Greater(t, in, 0.7)
	assert.Less(t, across, 0.3)
}

func TestEstimateInvalidEta(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	for _, eta := range []float64{0, 1, -0.5, 1.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := usvt.EstimateMatrix(a, usvt.WithEta(eta))
		require.ErrorIsf(t, err, usvt.ErrInvalidParameter, "eta=%v", eta)
		require.ErrorIs(t, usvt.ValidateEta(eta), usvt.ErrInvalidParameter)
	}
	require.NoError(t, usvt.ValidateEta(usvt.DefaultEta))
}

func TestEstimateInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		obs  usvt.Observations
	}{
		{"asymmetric", usvt.SingleObservation{Adjacency: mustRows(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {0, 1, 0}})}},
		{"non-binary", usvt.SingleObservation{Adjacency: mustRows(t, [][]float64{{0, 3}, {3, 0}})}},
		{"mismatched", usvt.MultipleObservations{Adjacencies: []matrix.Matrix{complete(t, 2), complete(t, 3)}}},
		{"empty", usvt.MultipleObservations{Adjacencies: []matrix.Matrix{}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := usvt.Estimate(tc.obs)
			require.ErrorIs(t, err, usvt.ErrInvalidInput)
			require.Nil(t, res)
		})
	}
}

// TestEstimateZeroVertices checks that a 0×0 input is an error, not a panic.
func TestEstimateZeroVertices(t *testing.T) {
	t.Parallel()

	empty, err := mustRows(t, [][]float64{{0}}).Induced(nil, nil)
	require.NoError(t, err)
	for name, dec := range decomposers() {
		var res *usvt.Result
		require.NotPanics(t, func() {
			res, err = usvt.EstimateMatrix(empty, usvt.WithDecomposer(dec))
		}, name)
		require.ErrorIs(t, err, usvt.ErrInvalidInput, name)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, name)
		require.Nil(t, res)
	}
}

type failingDecomposer struct{ err error }

func (f failingDecomposer) Decompose(matrix.Matrix) (*usvt.Decomposition, error) {
	return nil, f.err
}

type shortDecomposer struct{}

func (shortDecomposer) Decompose(a matrix.Matrix) (*usvt.Decomposition, error) {
	d, err := usvt.GonumSVD{}.Decompose(a)
	if err != nil {
		return nil, err
	}
	d.Values = d.Values[:1]
	return d, nil
}

func TestEstimateDecompositionFailure(t *testing.T) {
	t.Parallel()

	a := complete(t, 4)
	boom := errors.New("boom")

	_, err := usvt.EstimateMatrix(a, usvt.WithDecomposer(failingDecomposer{err: boom}))
	require.ErrorIs(t, err, usvt.ErrDecomposition)
	require.ErrorIs(t, err, boom)

	_, err = usvt.EstimateMatrix(a, usvt.WithDecomposer(shortDecomposer{}))
	require.ErrorIs(t, err, usvt.ErrDecomposition)

	_, err = usvt.EstimateMatrix(a, usvt.WithDecomposer(usvt.JacobiSVD{MaxRotations: 1}))
	require.ErrorIs(t, err, usvt.ErrDecomposition)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

// TestEstimateClearedOptions covers hand-written options that nil out fields.
func TestEstimateClearedOptions(t *testing.T) {
	t.Parallel()

	a := complete(t, 4)
	noDecomposer := func(o *usvt.Options) { o.Decomposer = nil }
	noLogger := func(o *usvt.Options) { o.Logger = nil }

	var err error
	require.NotPanics(t, func() { _, err = usvt.EstimateMatrix(a, noDecomposer) })
	require.ErrorIs(t, err, usvt.ErrDecomposition)

	var res *usvt.Result
	require.NotPanics(t, func() { res, err = usvt.EstimateMatrix(a, noLogger) })
	require.NoError(t, err)
	require.Equal(t, 4, res.Probability.Rows())
}

func TestEstimateLogsAtDebug(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := usvt.EstimateMatrix(complete(t, 10), usvt.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 10, entry.Data["n"])
	assert.Equal(t, 1, entry.Data["rank"])
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { usvt.WithDecomposer(nil) })
	assert.Panics(t, func() { usvt.WithLogger(nil) })

	o := usvt.DefaultOptions()
	assert.Equal(t, usvt.DefaultEta, o.Eta)
	assert.IsType(t, usvt.GonumSVD{}, o.Decomposer)
}
