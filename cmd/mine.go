package cmd

import (
	"encoding/hex"
	"os"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quipu-protocol/core/lib"
)

var mineCmd = &cobra.Command{
	Use:   "mine [flags] FILE",
	Short: "Search for a nonce whose recipe hash satisfies a challenge",
	Long: `Embed a nonce in the message and iterate it until the recipe hash
satisfies the challenge: either --starts-with PREFIX, or a less-or-equal
comparison against the unpacked --packed-target.`,
	Run: RunMine,
}

func init() {
	SetupMineFlags(mineCmd)
	rootCmd.AddCommand(mineCmd)
}

func SetupMineFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSlice("recipe", []string{"SHA256"},
		"Ordered comma-separated digest list hashing each candidate")
	cmd.PersistentFlags().Bool("string", false,
		"Treat the argument as a literal string instead of a file path")
	cmd.PersistentFlags().Int("nonce-length", 4, "Nonce region size in bytes, 1..255")
	cmd.PersistentFlags().String("nonce-position", "tail",
		"Where the nonce occupies the message: head or tail")
	cmd.PersistentFlags().Bool("nonce-in-data", false,
		"Overwrite the nonce region inside the message instead of carrying the "+
			"nonce alongside it")
	cmd.PersistentFlags().Bool("nonce-from-zero", false,
		"Start at the all-zero nonce instead of a random seed")
	cmd.PersistentFlags().Uint32("packed-target", 0x1effffff,
		"Bitcoin-style packed challenge target for the less-or-equal challenge")
	cmd.PersistentFlags().String("starts-with", "",
		"Hex digest prefix; when set, the starts-with challenge replaces less-or-equal")
	cmd.PersistentFlags().String("statsd-address", "",
		"When set, hash-rate gauges are reported to this statsd address")
}

func RunMine(cmd *cobra.Command, args []string) {
	// Commands share flag names, so the running command's flags are bound
	// here rather than at init time.
	viper.BindPFlags(cmd.PersistentFlags())

	config, err := LoadConfig()
	if err != nil {
		glog.Fatalf("RunMine: Problem loading config: %v", err)
	}
	if len(args) != 1 {
		_ = cmd.Usage()
		os.Exit(1)
	}

	var message []byte
	if viper.GetBool("string") {
		message = []byte(args[0])
	} else {
		message, err = os.ReadFile(args[0])
		if err != nil {
			glog.Fatalf("RunMine: Problem reading %s: %v", args[0], err)
		}
	}

	searchConfig := &lib.SearchConfig{
		NoncePosition: config.NoncePosition,
		NonceLength:   config.NonceLength,
		NonceInData:   config.NonceInData,
		NonceFromZero: config.NonceFromZero,
		Recipe:        config.Recipe,
	}
	if len(config.StartsWith) > 0 {
		searchConfig.Challenge = lib.ChallengeStartsWith
		searchConfig.ChallengeValue = config.StartsWith
	} else {
		recipe, err := lib.NewRecipe(config.Recipe...)
		if err != nil {
			glog.Fatalf("RunMine: Problem building recipe: %v", err)
		}
		target, err := lib.DecodePackedTarget(config.PackedTarget, recipe.OutputBits()/8)
		if err != nil {
			glog.Fatalf("RunMine: Problem unpacking target %08x: %v", config.PackedTarget, err)
		}
		searchConfig.Challenge = lib.ChallengeLessOrEqual
		searchConfig.ChallengeValue = target

		if len(target) == lib.DefaultTargetBytes {
			expectedWork, err := lib.ExpectedWorkForTarget(target)
			if err == nil {
				glog.Infof("RunMine: Expected hashes for target %08x: %v",
					config.PackedTarget, expectedWork)
			}
		}
	}

	searcher := lib.NewNonceSearcher()
	if config.StatsdAddress != "" {
		statsdClient, err := statsd.New(config.StatsdAddress)
		if err != nil {
			glog.Errorf("RunMine: Problem connecting statsd client: %v", err)
		} else {
			searcher.SetStatsdClient(statsdClient)
		}
	}

	started := time.Now()
	result, err := searcher.Compute(message, searchConfig)
	if err != nil {
		glog.Fatalf("RunMine: Search failed: %v", err)
	}

	color.Yellow("hash:   %s", hex.EncodeToString(result.Hash))
	color.Yellow("nonce:  %s", hex.EncodeToString(result.Nonce))
	color.Green("%d hashes in %v (%.0f h/s)",
		result.HashCount, time.Since(started), result.HashPerSecond)
}
