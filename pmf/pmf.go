// Package pmf implements probability mass functions over a discrete,
// ordered value domain: in-place normalization, convolution of
// independent distributions, and a deterministic sorted rendering for
// reporting.
package pmf

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/probkit/probkit/errors"
	"github.com/probkit/probkit/freqmap"
)

// ErrDegenerateDistribution is returned by Normalize when the total
// weight is zero: there is no distribution to normalize. It signals a
// contradiction between the model and the data and is never replaced
// by a default or NaN distribution.
var ErrDegenerateDistribution = errors.New("degenerate distribution: total weight is zero")

// Number constrains value types that convolution can add and weight.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pmf is a probability mass function: a frequency map whose weights,
// after Normalize, are probabilities summing to 1.
//
// Pmf instances are handled by pointer and compared by identity only:
// two distinct instances with identical contents are distinct map keys
// and never compare equal. There is deliberately no structural
// equality on Pmf, so a *Pmf used as a container key stays valid under
// mutation.
type Pmf[V constraints.Ordered] struct {
	*freqmap.Map[V]

	// Name is an optional display label. It is metadata only and
	// never participates in any computation.
	Name string
}

// New returns an unnormalized Pmf in which each listed value
// contributes weight 1.
func New[V constraints.Ordered](values ...V) *Pmf[V] {
	return &Pmf[V]{Map: freqmap.New(values...)}
}

// FromWeights returns an unnormalized Pmf over a copy of the given
// weights.
func FromWeights[V constraints.Ordered](weights map[V]float64) *Pmf[V] {
	return &Pmf[V]{Map: freqmap.FromWeights(weights)}
}

// Uniform returns a normalized Pmf assigning equal probability to each
// distinct value. At least one value is required.
func Uniform[V constraints.Ordered](values ...V) (*Pmf[V], error) {
	p := &Pmf[V]{Map: freqmap.New[V]()}
	for _, v := range values {
		p.Set(v, 1)
	}
	if _, err := p.Normalize(); err != nil {
		return nil, errors.Wrapf(err, "building uniform pmf over %d values", len(values))
	}
	return p, nil
}

// Normalize divides every weight by the current total, in place, and
// returns the normalizing constant. Already-normalized weights are a
// fixed point. A zero total is reported as ErrDegenerateDistribution
// and leaves the weights untouched.
func (p *Pmf[V]) Normalize() (float64, error) {
	total := p.Total()
	if total == 0 {
		return 0, errors.WithStack(ErrDegenerateDistribution)
	}
	for _, v := range p.Keys() {
		p.Set(v, p.Weight(v)/total)
	}
	return total, nil
}

// Render returns the support sorted ascending by the value type's
// natural order, paired positionally with the stored probabilities.
// Pure and deterministic: repeated calls on an unchanged Pmf return
// the same sequences. This is the sole interface a display layer
// consumes.
func (p *Pmf[V]) Render() ([]V, []float64) {
	values := p.Keys()
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = p.Weight(v)
	}
	return values, probs
}

// Copy returns a Pmf sharing nothing with the receiver.
func (p *Pmf[V]) Copy() *Pmf[V] {
	return &Pmf[V]{Map: p.Map.Copy(), Name: p.Name}
}
