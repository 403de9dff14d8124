package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bioquiz",
	Short: "AI-generated biostatistics quizzes in the terminal",
	Long:  "Bioquiz — cuestionarios de bioestadística generados con IA para estudiantes de ciencias de la salud.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int("count", 10, "Default number of questions per quiz")
	rootCmd.PersistentFlags().Bool("extended", false, "Enable chart and output interpretation questions")
	rootCmd.PersistentFlags().String("log", "", "Write provider logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}
