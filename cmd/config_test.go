package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quipu-protocol/core/quipuhash"
)

func TestParseRecipeLabels(t *testing.T) {
	require := require.New(t)

	algorithms, err := parseRecipeLabels([]string{"groestl384", " SKEIN224", "Blake256"})
	require.NoError(err)
	require.Equal([]quipuhash.Algorithm{
		quipuhash.AlgorithmGroestl384,
		quipuhash.AlgorithmSkein224,
		quipuhash.AlgorithmBlake256,
	}, algorithms)

	_, err = parseRecipeLabels([]string{"NOTAHASH"})
	require.Error(err)
}
