package main

import (
	"fmt"
	"os"

	"github.com/Thomas-WG/skillbotml/trainer"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	var configPath, inputPath, targetColumn, outputPath string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a classifier from a labeled CSV file",
		Long: "train reads a CSV file with a named target column, holds out part of it for\n" +
			"validation, trains a dense network on the rest, and saves the model.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// a .env file next to the binary can set SKILLBOT_* overrides
			_ = godotenv.Load()

			cfg := trainer.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = trainer.FromFile(configPath); err != nil {
					return err
				}
			}

			if inputPath != "" {
				cfg.InputPath = inputPath
			}
			if targetColumn != "" {
				cfg.TargetColumn = targetColumn
			}
			if outputPath != "" {
				cfg.OutputPath = outputPath
			}

			_, err := trainer.Run(cfg)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a run configuration file (YAML, TOML, or JSON)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "labeled CSV file to train on (overrides the config)")
	cmd.Flags().StringVarP(&targetColumn, "target", "t", "", "name of the label column (overrides the config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "directory to save the model to (overrides the config)")
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
