// invaders is a space invaders arcade game for the terminal.
//
// Usage:
//
//	invaders play            - Play the game
//	invaders list            - List available games
//	invaders config          - Print the effective game configuration
//
// Global flags (also read from INVADERS_* environment variables):
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom game config YAML
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--mute               - Disable sound
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A space invaders arcade game rendered in the terminal.

Available commands:
  play     - Play the game
  list     - Show all available games
  config   - Print the effective game configuration

Examples:
  invaders play
  invaders play --seed 42 --mute
  INVADERS_LOG_FILE=/tmp/invaders.log invaders play
  invaders config --default > my-invaders.yaml
  invaders play --config ./my-invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 0, "Tick rate (frames per second, 0 = from config)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("config", "", "Path to custom game config YAML")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.Bool("mute", false, "Disable sound")

	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
	viper.SetEnvPrefix("INVADERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
