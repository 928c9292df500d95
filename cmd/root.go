package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/config"
)

// v holds flag, environment and file settings for every command.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Personality quiz for the terminal",
	Long:  "Persona: a five-question personality quiz, one page per question, right in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default ./persona.yaml or $XDG_CONFIG_HOME/persona/persona.yaml)")
	pf.String("log-file", "", "Write logs to this file (overrides PERSONA_LOG_FILE)")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("journal", "", "Append recorded answers to this SQLite file (overrides PERSONA_JOURNAL_PATH)")

	_ = v.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("journal.path", pf.Lookup("journal"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(journalCmd)
}

// loadConfig resolves configuration using the --config flag if given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(v, path)
}
