package pmf

import "github.com/probkit/probkit/freqmap"

// Convolve returns the distribution of X + Y for independent X ~ x and
// Y ~ y: every outcome pair (kx, ky) contributes px*py at the key
// kx+ky. Pairs colliding on the same sum accumulate. Neither input is
// mutated. If both inputs are normalized the result already sums to 1;
// for unnormalized inputs the result's total is x.Total() * y.Total().
func Convolve[V Number](x, y *Pmf[V]) *Pmf[V] {
	out := &Pmf[V]{Map: freqmap.New[V]()}
	x.Each(func(kx V, px float64) {
		y.Each(func(ky V, py float64) {
			out.IncrBy(kx+ky, px*py)
		})
	})
	return out
}

// Sum folds Convolve over a non-empty sequence of distributions. The
// reduction is associative and commutative, so any grouping of the
// same distributions agrees up to floating-point rounding order.
func Sum[V Number](first *Pmf[V], rest ...*Pmf[V]) *Pmf[V] {
	out := first.Copy()
	for _, p := range rest {
		out = Convolve(out, p)
	}
	return out
}

// Mean returns the probability-weighted mean of the support. For an
// unnormalized Pmf the result is scaled by the total weight.
func Mean[V Number](p *Pmf[V]) float64 {
	var mean float64
	p.Each(func(v V, w float64) {
		mean += float64(v) * w
	})
	return mean
}
