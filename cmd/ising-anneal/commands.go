// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ising/ensemble"
	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/internal/config"
	"github.com/katalvlaran/ising/internal/logging"
)

// flags shared by every subcommand.
type commonFlags struct {
	configPath string
	envFile    string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var common commonFlags

	root := &cobra.Command{
		Use:           "ising-anneal",
		Short:         "Anneal classical Ising models with Metropolis or Swendsen-Wang updates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&common.configPath, "config", "", "YAML run file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&common.envFile, "env-file", ".env", "dotenv file with ISING_* overrides; skipped when missing")
	root.PersistentFlags().BoolVar(&common.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newRunCmd(&common), newExactCmd(&common))

	return root
}

// load reads the dotenv file and the run file.
func (f *commonFlags) load() (config.Config, error) {
	if err := config.LoadDotEnv(f.envFile); err != nil {
		return config.Config{}, err
	}

	return config.Load(f.configPath)
}

func newRunCmd(common *commonFlags) *cobra.Command {
	var (
		replicas int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Anneal independent replicas and print the ensemble result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("replicas") {
				cfg.Replicas = replicas
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), level, common.noColor)

			return runEnsemble(cmd, cfg, logger)
		},
	}
	cmd.Flags().IntVar(&replicas, "replicas", 0, "override the replica count")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the base seed")

	return cmd
}

func runEnsemble(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) error {
	model, err := cfg.BuildModel()
	if err != nil {
		return err
	}
	sched, err := cfg.BuildSchedule()
	if err != nil {
		return err
	}
	opts, err := cfg.EnsembleOptions(logger)
	if err != nil {
		return err
	}

	logger.Info("anneal start",
		slog.String("model", cfg.Model.Kind),
		slog.Int("sites", model.Size()),
		slog.String("algorithm", opts.Algorithm.String()),
		slog.Int("total_steps", sched.TotalSteps()),
	)
	res, err := ensemble.Run(cmd.Context(), model, sched, opts)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), res)
}

// exactReport is the JSON shape of the exact subcommand.
type exactReport struct {
	Sites        int           `json:"sites"`
	GroundEnergy float64       `json:"ground_energy"`
	GroundStates []graph.Spins `json:"ground_states"`
	Beta         *float64      `json:"beta,omitempty"`
	Boltzmann    []float64     `json:"boltzmann,omitempty"` // indexed by Spins.Index
}

func newExactCmd(common *commonFlags) *cobra.Command {
	var beta float64

	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Enumerate every configuration of a small model (at most 20 sites)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.load()
			if err != nil {
				return err
			}
			model, err := cfg.BuildModel()
			if err != nil {
				return err
			}

			e, states, err := model.GroundStates()
			if err != nil {
				return err
			}
			report := exactReport{Sites: model.Size(), GroundEnergy: e, GroundStates: states}
			if cmd.Flags().Changed("beta") {
				if report.Boltzmann, err = model.BoltzmannDistribution(beta); err != nil {
					return err
				}
				report.Beta = &beta
			}

			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().Float64Var(&beta, "beta", 0, "also print the Boltzmann distribution at this inverse temperature")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}
