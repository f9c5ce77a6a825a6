package pmf

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvolveTwoDice(t *testing.T) {
	d6 := fairDie(t, 6)
	sum := Convolve(d6, d6)

	values, probs := sum.Render()
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, values)

	assert.InDelta(t, 6.0/36.0, sum.Weight(7), 1e-9)
	assert.InDelta(t, 1.0/36.0, sum.Weight(2), 1e-9)
	assert.InDelta(t, 1.0/36.0, sum.Weight(12), 1e-9)

	var total float64
	for _, p := range probs {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestConvolveDoesNotMutateInputs(t *testing.T) {
	x := fairDie(t, 6)
	y := fairDie(t, 4)
	Convolve(x, y)

	assert.InDelta(t, 1.0/6.0, x.Weight(1), 1e-9)
	assert.InDelta(t, 1.0/4.0, y.Weight(1), 1e-9)
	assert.Equal(t, 6, x.Len())
	assert.Equal(t, 4, y.Len())
}

func TestConvolveUnnormalizedTotals(t *testing.T) {
	x := FromWeights(map[int]float64{1: 2, 2: 3})
	y := FromWeights(map[int]float64{0: 1, 1: 4})
	out := Convolve(x, y)

	assert.InDelta(t, x.Total()*y.Total(), out.Total(), 1e-9)
}

func TestSumAssociativity(t *testing.T) {
	a := fairDie(t, 6)
	b := fairDie(t, 6)
	c := fairDie(t, 6)

	leftFold := Sum(a, b, c)
	rightFold := Convolve(a, Convolve(b, c))

	values, probs := leftFold.Render()
	assert.Equal(t, 3, values[0])
	assert.Equal(t, 18, values[len(values)-1])
	assert.Len(t, values, 16)

	otherValues, otherProbs := rightFold.Render()
	assert.Equal(t, values, otherValues)
	assert.InDeltaSlice(t, probs, otherProbs, 1e-12)
}

func TestSumSingleDistribution(t *testing.T) {
	d4 := fairDie(t, 4)
	out := Sum(d4)

	// a one-element fold is a copy, not an alias
	assert.NotSame(t, d4, out)
	out.Set(1, 0.9)
	assert.InDelta(t, 0.25, d4.Weight(1), 1e-9)
}

func TestMeanFairDie(t *testing.T) {
	d6 := fairDie(t, 6)
	assert.InDelta(t, 3.5, Mean(d6), 1e-9)
}

func TestConvolveMeanMatchesEnumeration(t *testing.T) {
	d6 := fairDie(t, 6)
	sum := Convolve(d6, d6)

	var outcomes []float64
	for i := 1; i <= 6; i++ {
		for j := 1; j <= 6; j++ {
			outcomes = append(outcomes, float64(i+j))
		}
	}
	exp, err := stats.Mean(outcomes)
	require.NoError(t, err)

	assert.InDelta(t, exp, Mean(sum), 1e-9)
}
