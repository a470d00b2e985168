package main

import (
	"fmt"
	"winternight/internal/game"
	"winternight/internal/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := logger.Setup(cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	scene, err := game.LoadScene()
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return game.New(cfg, log, scene).Run(screen)
}
