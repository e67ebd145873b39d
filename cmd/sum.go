package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quipu-protocol/core/lib"
)

var sumCmd = &cobra.Command{
	Use:   "sum [flags] FILE...",
	Short: "Hash files or strings through a digest recipe",
	Long: `Hash each argument through the configured recipe. Arguments are file
paths unless --string is set, in which case they are hashed literally.`,
	Run: RunSum,
}

func init() {
	SetupSumFlags(sumCmd)
	rootCmd.AddCommand(sumCmd)
}

func SetupSumFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSlice("recipe", []string{"SHA256"},
		"Ordered comma-separated digest list, e.g. GROESTL384,SKEIN224,BLAKE256. "+
			"The output of each stage feeds the next.")
	cmd.PersistentFlags().Bool("string", false,
		"Treat the arguments as literal strings to hash instead of file paths")
	cmd.PersistentFlags().Bool("base64", false,
		"Render digests as base64 instead of hex")
	cmd.PersistentFlags().Bool("time", false,
		"Report the time taken to hash each message")
}

func RunSum(cmd *cobra.Command, args []string) {
	// Commands share flag names, so the running command's flags are bound
	// here rather than at init time.
	viper.BindPFlags(cmd.PersistentFlags())

	config, err := LoadConfig()
	if err != nil {
		glog.Fatalf("RunSum: Problem loading config: %v", err)
	}
	if len(args) == 0 {
		_ = cmd.Usage()
		os.Exit(1)
	}

	recipe, err := lib.NewRecipe(config.Recipe...)
	if err != nil {
		glog.Fatalf("RunSum: Problem building recipe: %v", err)
	}

	hashStrings := viper.GetBool("string")
	exitCode := 0
	for _, arg := range args {
		var message []byte
		label := arg
		if hashStrings {
			message = []byte(arg)
			label = "\"" + arg + "\""
		} else {
			message, err = os.ReadFile(arg)
			if err != nil {
				glog.Errorf("RunSum: Problem reading %s: %v", arg, err)
				exitCode = 1
				continue
			}
		}

		started := time.Now()
		digest, err := recipe.ComputeHash(message)
		if err != nil {
			glog.Fatalf("RunSum: Problem hashing %s: %v", label, err)
		}

		rendered := hex.EncodeToString(digest)
		if config.Base64Output {
			rendered = base64.StdEncoding.EncodeToString(digest)
		}
		if config.ShowTime {
			color.Yellow("%s  %s (%v)", rendered, label, time.Since(started))
		} else {
			color.Yellow("%s  %s", rendered, label)
		}
	}
	os.Exit(exitCode)
}
