package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"winternight/internal/game"
	"winternight/internal/logger"

	"github.com/spf13/cobra"
)

var (
	simFrames  int
	simDT      float64
	simProgram string
	simConfirm bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play the night headlessly from an input program and print the run summary",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.IntVar(&simFrames, "frames", 3600, "frames to run")
	flags.Float64Var(&simDT, "dt", 1.0/60, "seconds per frame")
	flags.StringVar(&simProgram, "program", game.DefaultProgram, "input program: [n]l|r|u|d steps, [n]e confirms, [n]. waits")
	flags.BoolVar(&simConfirm, "confirm", true, "hold confirm on every frame that is not a step")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simFrames <= 0 || simDT <= 0 {
		return errors.New("frames and dt must be positive")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := logger.Setup(cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	pilot, err := game.ParseAutopilot(simProgram, simConfirm)
	if err != nil {
		return err
	}
	scene, err := game.LoadScene()
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	g := game.New(cfg, log, scene)
	for iter := 0; iter < simFrames; iter++ {
		g.Update(pilot.Next(g.Player(), simDT))
	}

	data, err := json.MarshalIndent(map[string]any{
		"run":    g.RunLog(),
		"player": g.Player().Cell.String(),
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
