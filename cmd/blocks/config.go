package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'blocks play' does, applies the
difficulty preset and prints the result as YAML. The source is reported
on stderr.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	preset, err := config.ParseDifficultyPreset(flagShowDifficulty)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadBlocks(flagShowConfig)
	if err != nil {
		return err
	}
	config.ApplyBlocksPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	newLogger(cmd.ErrOrStderr()).Info("config loaded", "source", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
