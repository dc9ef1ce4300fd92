// tsced is a terminal editor for platformer levels and overworld maps.
//
// Usage:
//
//	tsced edit <name>          - Edit a level (created with --new)
//	tsced edit --world <name>  - Edit an overworld map
//	tsced menu                 - Browse stored levels and worlds
//	tsced list                 - List stored levels or worlds
//	tsced types                - List placeable object types
//	tsced serve                - Start SSH server for remote editing
//
// Global flags:
//
//	--config <path> - Editor config YAML (default: ~/.tsced/configs/editor.yaml)
//	--db <path>     - Override the level database path
//	--fps <rate>    - Override the tick rate
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsc-editor/internal/config"
	"github.com/vovakirdan/tsc-editor/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tsced",
	Short: "tsced - Level and world editor in your terminal",
	Long: `tsced edits platformer levels and overworld maps from the terminal.
Documents are stored in a local SQLite database.

Available commands:
  edit     - Open a level or world in the editor
  menu     - Browse stored levels and worlds
  list     - Show stored levels or worlds
  types    - Show placeable object types
  serve    - Start SSH server for remote editing

Examples:
  tsced edit --new lvl_1
  tsced edit --world overworld
  tsced menu
  tsced serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to editor config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to level database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (overrides config)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the editor config and applies the global flag overrides.
func loadConfig() (config.EditorConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	return cfg, config.Validate(cfg)
}

func newLogger(cfg config.EditorConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tsced",
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

func openStore(cfg config.EditorConfig) (*storage.Store, error) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("could not open level database: %w", err)
	}
	return store, nil
}
