package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its difficulty variants.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.TopLevel()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	width := 2 // "ID" header
	for _, g := range registry.List() {
		if g.IsVariant() {
			width = max(width, len(g.ID)+2)
		} else {
			width = max(width, len(g.ID))
		}
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", width, g.ID, g.Title)
		for _, v := range registry.Variants(g.ID) {
			fmt.Printf("    %-*s  %s\n", width-2, v.ID, v.Title)
		}
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
