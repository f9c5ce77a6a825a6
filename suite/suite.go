// Package suite implements Bayesian updating over a discrete set of
// hypotheses. A Suite is a Pmf whose keys are hypotheses and whose
// weights are the current belief state; each observation folded in via
// Update moves the suite from prior to posterior.
package suite

import (
	"golang.org/x/exp/constraints"

	"github.com/probkit/probkit/errors"
	"github.com/probkit/probkit/pmf"
)

// Likelihood computes P(data | hypo). Implementations must be pure and
// non-negative: repeated calls with the same arguments return the same
// value, or update results are not deterministic.
type Likelihood[H constraints.Ordered, D any] func(data D, hypo H) float64

// Suite is a Pmf over hypotheses together with the likelihood function
// used to fold observations into the posterior. Updates are inherently
// sequential; a Suite is not safe for concurrent use. The hypothesis
// set is fixed at construction: updates reweight hypotheses, never add
// or remove them.
type Suite[H constraints.Ordered, D any] struct {
	*pmf.Pmf[H]

	likelihood Likelihood[H, D]
}

// New returns a Suite holding a uniform prior over the given
// hypotheses. At least one hypothesis is required.
func New[H constraints.Ordered, D any](like Likelihood[H, D], hypos ...H) (*Suite[H, D], error) {
	if len(hypos) == 0 {
		return nil, errors.Errorf("suite requires at least one hypothesis")
	}
	prior, err := pmf.Uniform(hypos...)
	if err != nil {
		return nil, err
	}
	return &Suite[H, D]{Pmf: prior, likelihood: like}, nil
}

// FromPmf wraps an explicit prior. The prior is adopted in place, not
// copied: the caller hands over ownership and must not keep mutating
// it.
func FromPmf[H constraints.Ordered, D any](prior *pmf.Pmf[H], like Likelihood[H, D]) *Suite[H, D] {
	return &Suite[H, D]{Pmf: prior, likelihood: like}
}

// Update folds one observation into the belief state: over a snapshot
// of the current hypotheses, each weight is multiplied by its
// likelihood for the observation, and the suite is renormalized once
// after every weight has been updated. Normalizing mid-loop would
// divide by the wrong total, so the two phases never interleave.
//
// If the observation is impossible under every hypothesis the total
// collapses to zero and Update fails with ErrDegenerateDistribution.
// The collapsed weights are left in place: the error means the prior
// and the data contradict each other, and the suite is no longer
// usable.
func (s *Suite[H, D]) Update(data D) error {
	for _, h := range s.Keys() {
		s.Set(h, s.Weight(h)*s.likelihood(data, h))
	}
	if _, err := s.Normalize(); err != nil {
		return errors.Wrapf(err, "updating with observation %v", data)
	}
	return nil
}

// UpdateAll folds independent observations left to right, stopping at
// the first failed update. The final posterior does not depend on the
// order of independent observations; the intermediate states do.
func (s *Suite[H, D]) UpdateAll(observations ...D) error {
	for _, data := range observations {
		if err := s.Update(data); err != nil {
			return err
		}
	}
	return nil
}
