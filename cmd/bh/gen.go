package main

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/barnes-hut/gen"
	"github.com/phil-mansfield/barnes-hut/particleio"
	"github.com/spf13/cobra"
)

func genCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "gen <scenario.cfg> <output-file>",
		Short: "Generate a random particle catalog from a scenario file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := gen.LoadScenario(args[0])
			if err != nil {
				return &usageError{fmt.Sprintf("scenario file: %v", err)}
			}

			header, particles := gen.Generate(scenario, seed)

			f, err := os.Create(args[1])
			if err != nil {
				return &particleio.Error{Kind: particleio.IOError, Msg: err.Error(), Err: err}
			}
			defer f.Close()

			return particleio.WriteParticles(f, header, particles)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "deterministic PRNG seed")
	return cmd
}
