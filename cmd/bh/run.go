package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/phil-mansfield/barnes-hut/config"
	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/particleio"
	"github.com/phil-mansfield/barnes-hut/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runCmd() *cobra.Command {
	var steps int
	var out string
	var snapshotEvery int

	cmd := &cobra.Command{
		Use:   "run <filename> <theta> <particles-per-leaf>",
		Short: "Run the simulation loop over a particle file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			theta, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return &usageError{fmt.Sprintf("theta: %v", err)}
			}
			leafCap, err := strconv.Atoi(args[2])
			if err != nil {
				return &usageError{fmt.Sprintf("particles-per-leaf: %v", err)}
			}

			return runSimulation(args[0], theta, leafCap, steps, out, snapshotEvery)
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps to run (default: derived from t_start/t_end/dt)")
	cmd.Flags().StringVar(&out, "out", "snapshot", "snapshot file prefix")
	cmd.Flags().IntVar(&snapshotEvery, "snapshot-every", 0, "write a snapshot every N steps (0: final step only)")

	return cmd
}

func runSimulation(filename string, theta float64, leafCap, steps int, outPrefix string, snapshotEvery int) error {
	f, err := os.Open(filename)
	if err != nil {
		return &particleio.Error{Kind: particleio.IOError, Msg: err.Error(), Err: err}
	}
	defer f.Close()

	header, particles, err := particleio.ReadParticles(f)
	if err != nil {
		return err
	}

	if steps <= 0 {
		steps = int((header.TEnd-header.TStart)/header.Dt + 0.5)
		if steps < 1 {
			steps = 1
		}
	}

	cfg := config.SimulationConfig{
		G:                   viper.GetFloat64("g"),
		Epsilon2:            viper.GetFloat64("epsilon2"),
		Theta:               theta,
		MaxParticlesPerLeaf: leafCap,
		Dt:                  header.Dt,
	}

	sim, err := simulation.New(cfg, len(particles), 0)
	if err != nil {
		return err
	}

	for step := 1; step <= steps; step++ {
		if err := sim.Step(particles); err != nil {
			return err
		}
		snap := sim.Stats()

		if verbose {
			log.Printf("step %d: %s", step, snap.Total())
		}

		if shouldSnapshot(step, steps, snapshotEvery) {
			if err := writeSnapshots(outPrefix, step, snap.Total().String(), particles); err != nil {
				return err
			}
		}
	}
	return nil
}

func shouldSnapshot(step, totalSteps, every int) bool {
	if every <= 0 {
		return step == totalSteps
	}
	return step%every == 0 || step == totalSteps
}

func writeSnapshots(prefix string, step int, stepDuration string, particles []particle.Particle) error {
	header := fmt.Sprintf("step=%d duration=%s particles=%d", step, stepDuration, len(particles))

	forcesPath := fmt.Sprintf("%s.%04d.forces", prefix, step)
	ff, err := os.Create(forcesPath)
	if err != nil {
		return &particleio.Error{Kind: particleio.IOError, Msg: err.Error(), Err: err}
	}
	defer ff.Close()
	if err := particleio.WriteForceSnapshot(ff, header, particles); err != nil {
		return err
	}

	positionsPath := fmt.Sprintf("%s.%04d.positions", prefix, step)
	pf, err := os.Create(positionsPath)
	if err != nil {
		return &particleio.Error{Kind: particleio.IOError, Msg: err.Error(), Err: err}
	}
	defer pf.Close()
	return particleio.WritePositionSnapshot(pf, header, particles)
}
