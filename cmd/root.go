package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sagelearn/sage/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sage",
	Short: "AI tutoring backend with adaptive difficulty",
	Long:  "Sage is an AI-powered learning platform backend: personalized curricula, tutoring chat, and adaptive difficulty inference.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SAGE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SAGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
