// winternight is a short terminal story about a snowed-in cabin, a ferret in
// a raincoat and a fire that needs lighting. Build:
//
//	go build -o winternight ./cmd/winternight
//
// Usage:
//
//	./winternight [--config settings.yaml] [--fast-move] [--log-file game.log]
//	./winternight validate
//	./winternight simulate [--frames 3600] [--program "3l d e"]
package main

import (
	"fmt"
	"os"
	"winternight/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
	fastMove   bool
	fps        int
	logFile    string
	logLevel   string
	runLog     bool
)

var rootCmd = &cobra.Command{
	Use:          "winternight",
	Short:        "A winter night in a cabin, told in a terminal",
	Long:         `Walk the cabin with the arrow keys or hjkl/wasd, hold shift to hurry, and press e, space or enter to interact.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML settings file")
	flags.StringVar(&envFile, "env-file", ".env", "file of WINTERNIGHT_* variables, ignored when absent")
	flags.BoolVar(&fastMove, "fast-move", false, "allow shift to shorten steps")
	flags.IntVar(&fps, "fps", 60, "frames per second")
	flags.StringVar(&logFile, "log-file", "", `log destination, "-" for stderr`)
	flags.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	flags.BoolVar(&runLog, "run-log", false, "append a summary of the session to the run log")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads settings and applies any flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("fast-move") {
		cfg.FastMove = fastMove
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("run-log") {
		cfg.RunLog = runLog
	}
	return cfg, cfg.Validate()
}
