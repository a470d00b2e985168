package main

import (
	"fmt"
	"winternight/internal/game"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the cabin and check every script against its animations and screens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		scene, err := game.LoadScene()
		if err != nil {
			return err
		}
		steps := 0
		for _, c := range scene.Chars {
			steps += len(c.Script)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %dx%d map, %d characters, %d script steps, %d screens\n",
			scene.Map.Width, scene.Map.Height, len(scene.Chars), steps, len(scene.Screens))
		return nil
	},
}
