package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bioquiz/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the biostatistics topic catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range topics.All() {
			fmt.Println(t)
		}
	},
}
