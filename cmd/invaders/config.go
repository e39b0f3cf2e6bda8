package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Loads the game configuration the same way 'play' does and prints it.
The search order is --config, ~/.invaders/configs/invaders.yaml,
./configs/invaders.yaml, then the built-in defaults.

Use --default to print the built-in defaults as a starting point for a
custom file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefault {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadInvaders(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
