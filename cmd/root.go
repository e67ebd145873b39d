package cmd

import (
	"strings"

	"github.com/golang/glog"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// The real work lives in the sum and mine subcommands; the root only wires
// the shared configuration sources.
var rootCmd = &cobra.Command{
	Use:   "core",
	Short: "Quipu hash core",
	Long: `Digest, recipe, hash-tree and nonce-search tooling backed by the ` +
		`Quipu digest engine.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default searches ./core.yaml, then $HOME/.quipu/core.yaml)")
}

// initConfig wires the configuration sources: the explicit --config file, or
// else a core config file found in the working directory or ~/.quipu, and
// QUIPU_-prefixed environment variables. Viper resolves each key from a flag
// given on the command line first, then the environment, then the config
// file, and finally the per-command flag default. Every flag key is
// reachable from the environment with dashes mapped to underscores, e.g.
// QUIPU_NONCE_LENGTH=8 or QUIPU_RECIPE=SHA256.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("core")
		viper.AddConfigPath(".")
		if quipuDir, err := homedir.Expand("~/.quipu"); err == nil {
			viper.AddConfigPath(quipuDir)
		}
	}

	viper.SetEnvPrefix("quipu")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		glog.V(1).Infof("initConfig: Using config file %s", viper.ConfigFileUsed())
	}
}
