package main

import (
	"github.com/quipu-protocol/core/cmd"
)

func main() {
	// Viper manages the command-line flags, so running:
	// $ ./core sum --recipe SHA256,SHA256 somefile
	// triggers the RunSum() function defined in cmd/sum.go with the flags
	// resolved from the CLI, the environment, or the config file.
	cmd.Execute()
}
