package lib

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quipu-protocol/core/quipuhash"
)

func TestRecipeRejectsEmpty(t *testing.T) {
	require := require.New(t)

	_, err := NewRecipe()
	require.Error(err)
	require.ErrorIs(err, ErrorInvalidConfig)
}

func TestRecipeSingleStage(t *testing.T) {
	require := require.New(t)

	recipe, err := NewRecipe(quipuhash.AlgorithmSha256)
	require.NoError(err)

	out, err := recipe.ComputeHash([]byte("abc"))
	require.NoError(err)
	expected := sha256.Sum256([]byte("abc"))
	require.Equal(expected[:], out)
}

func TestRecipeDoubleHash(t *testing.T) {
	require := require.New(t)

	recipe, err := NewRecipe(quipuhash.AlgorithmSha256, quipuhash.AlgorithmSha256)
	require.NoError(err)

	out, err := recipe.ComputeHash([]byte("abc"))
	require.NoError(err)

	inner := sha256.Sum256([]byte("abc"))
	expected := sha256.Sum256(inner[:])
	require.Equal(expected[:], out)
}

// The general fold of a three-stage recipe must agree with composing
// single-stage recipes, which run the unrolled one-stage path, by hand.
func TestRecipeFoldEquivalence(t *testing.T) {
	require := require.New(t)

	algorithms := []quipuhash.Algorithm{
		quipuhash.AlgorithmGroestl384,
		quipuhash.AlgorithmSkein224,
		quipuhash.AlgorithmBlake256,
	}
	recipe, err := NewRecipe(algorithms...)
	require.NoError(err)
	require.Equal(256, recipe.OutputBits())

	out, err := recipe.ComputeHash([]byte("abc"))
	require.NoError(err)

	manual := []byte("abc")
	for _, alg := range algorithms {
		stage, err := NewRecipe(alg)
		require.NoError(err)
		manual, err = stage.ComputeHash(manual)
		require.NoError(err)
	}
	require.Equal(manual, out)
}

func TestRecipeAdd(t *testing.T) {
	require := require.New(t)

	recipe, err := NewRecipe(quipuhash.AlgorithmSha256)
	require.NoError(err)
	require.NoError(recipe.Add(quipuhash.AlgorithmSha256))
	require.Equal(2, recipe.NumStages())

	double, err := NewRecipe(quipuhash.AlgorithmSha256, quipuhash.AlgorithmSha256)
	require.NoError(err)

	fromAdd, err := recipe.ComputeHash([]byte("abc"))
	require.NoError(err)
	fromNew, err := double.ComputeHash([]byte("abc"))
	require.NoError(err)
	require.Equal(fromNew, fromAdd)
}

func TestRecipeReusableAcrossComputations(t *testing.T) {
	require := require.New(t)

	recipe, err := NewRecipe(quipuhash.AlgorithmJh256, quipuhash.AlgorithmQmhHuk256)
	require.NoError(err)

	first, err := recipe.ComputeHash([]byte("quien mato a Palomino Molero"))
	require.NoError(err)
	second, err := recipe.ComputeHash([]byte("quien mato a Palomino Molero"))
	require.NoError(err)
	require.Equal(first, second)
}
