// Command bh is the Barnes-Hut simulator's driver: it loads a particle
// file, runs the pipeline for a number of steps, and writes force and
// position snapshots, plus a "gen" subcommand for synthesizing test
// catalogs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bh",
		Short: "Barnes-Hut N-body simulator",
		Long:  `bh builds an octree over a particle catalog each step and advances it by leapfrog integration using the Barnes-Hut approximation.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "ambient config file (YAML), overrides G and epsilon^2 defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-step stats")

	rootCmd.AddCommand(runCmd(), genCmd())
	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil && verbose {
			fmt.Fprintln(os.Stderr, "warning: could not read config file:", err)
		}
	}
	viper.SetDefault("g", 1.0)
	viper.SetDefault("epsilon2", 1e-10)
	viper.AutomaticEnv()
}
