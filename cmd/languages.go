package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyverify/internal/transpiler"
)

var languagesCommand = &cobra.Command{
	Use:   "languages",
	Short: "list supported target languages",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		fmt.Println("supported target languages:")
		for _, target := range transpiler.Targets() {
			fmt.Printf("- %s: %s\n", target, transpiler.Languages[target])
		}
	},
}
