package cmd

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/viper"

	"github.com/quipu-protocol/core/lib"
	"github.com/quipu-protocol/core/quipuhash"
)

type Config struct {
	// Hashing
	Recipe       []quipuhash.Algorithm
	Base64Output bool
	ShowTime     bool

	// Mining
	NonceLength   int
	NoncePosition lib.NoncePosition
	NonceInData   bool
	NonceFromZero bool
	PackedTarget  uint32
	StartsWith    []byte

	// Metrics
	StatsdAddress string
}

// LoadConfig reads the viper-bound flags into a Config. Flag parsing
// failures surface as errors rather than panics so the commands can report
// them with context.
func LoadConfig() (*Config, error) {
	config := &Config{}

	recipe, err := parseRecipeLabels(viper.GetStringSlice("recipe"))
	if err != nil {
		return nil, err
	}
	config.Recipe = recipe
	config.Base64Output = viper.GetBool("base64")
	config.ShowTime = viper.GetBool("time")

	config.NonceLength = viper.GetInt("nonce-length")
	if viper.GetString("nonce-position") == "head" {
		config.NoncePosition = lib.NoncePositionHead
	} else {
		config.NoncePosition = lib.NoncePositionTail
	}
	config.NonceInData = viper.GetBool("nonce-in-data")
	config.NonceFromZero = viper.GetBool("nonce-from-zero")
	config.PackedTarget = viper.GetUint32("packed-target")
	if prefix := viper.GetString("starts-with"); prefix != "" {
		decoded, err := hex.DecodeString(prefix)
		if err != nil {
			return nil, err
		}
		config.StartsWith = decoded
	}

	config.StatsdAddress = viper.GetString("statsd-address")

	return config, nil
}

func parseRecipeLabels(labels []string) ([]quipuhash.Algorithm, error) {
	algorithms := []quipuhash.Algorithm{}
	for _, label := range labels {
		alg, err := quipuhash.ParseAlgorithm(strings.ToUpper(strings.TrimSpace(label)))
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, alg)
	}
	return algorithms, nil
}
