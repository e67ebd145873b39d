package lib

import (
	"github.com/pkg/errors"

	"github.com/quipu-protocol/core/quipuhash"
)

// Recipe chains digests end-to-end: the output of stage i is the input of
// stage i+1. The digest instances are exclusively owned by the recipe, so a
// recipe must not be shared between concurrent computations; parallel
// workers each build their own.
type Recipe struct {
	algorithms []quipuhash.Algorithm
	stages     []quipuhash.Digest
}

// NewRecipe builds a recipe from an ordered, non-empty list of algorithm
// tags.
func NewRecipe(algorithms ...quipuhash.Algorithm) (*Recipe, error) {
	if len(algorithms) == 0 {
		return nil, errors.Wrapf(ErrorInvalidConfig, "NewRecipe: empty recipe")
	}
	rec := &Recipe{}
	for _, alg := range algorithms {
		if err := rec.Add(alg); err != nil {
			return nil, errors.Wrapf(err, "NewRecipe: ")
		}
	}
	return rec, nil
}

// Add appends a freshly configured instance of the given algorithm.
func (rec *Recipe) Add(alg quipuhash.Algorithm) error {
	dig, err := quipuhash.NewDigest(alg)
	if err != nil {
		return errors.Wrapf(err, "Recipe.Add: ")
	}
	rec.algorithms = append(rec.algorithms, alg)
	rec.stages = append(rec.stages, dig)
	return nil
}

// Algorithms returns the ordered tags the recipe was built from.
func (rec *Recipe) Algorithms() []quipuhash.Algorithm {
	return append([]quipuhash.Algorithm{}, rec.algorithms...)
}

// NumStages returns the number of digests in the chain.
func (rec *Recipe) NumStages() int {
	return len(rec.stages)
}

// OutputBits reports the output width of the final stage.
func (rec *Recipe) OutputBits() int {
	return rec.stages[len(rec.stages)-1].OutputBits()
}

// ComputeHash folds data through every stage and returns the final digest.
// The one- and two-stage paths are unrolled; behavior is identical to the
// general fold.
func (rec *Recipe) ComputeHash(data []byte) ([]byte, error) {
	switch len(rec.stages) {
	case 1:
		out, err := rec.stages[0].Compute(quipuhash.NewSliceSource(data))
		if err != nil {
			return nil, errors.Wrapf(err, "Recipe.ComputeHash: stage 0: ")
		}
		return out, nil
	case 2:
		mid, err := rec.stages[0].Compute(quipuhash.NewSliceSource(data))
		if err != nil {
			return nil, errors.Wrapf(err, "Recipe.ComputeHash: stage 0: ")
		}
		out, err := rec.stages[1].Compute(quipuhash.NewSliceSource(mid))
		if err != nil {
			return nil, errors.Wrapf(err, "Recipe.ComputeHash: stage 1: ")
		}
		return out, nil
	}

	out := data
	for ii, stage := range rec.stages {
		next, err := stage.Compute(quipuhash.NewSliceSource(out))
		if err != nil {
			return nil, errors.Wrapf(err, "Recipe.ComputeHash: stage %d: ", ii)
		}
		out = next
	}
	return out, nil
}
