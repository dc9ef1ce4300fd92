package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tsc-editor/internal/config"
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/platform/tui"
	"github.com/vovakirdan/tsc-editor/internal/storage"
)

var (
	flagWorld bool
	flagNew   bool
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a level or world",
	Long: `Open the named level (or world with --world) in the editor.

Controls:
  Arrows        - Move pointer
  Space         - Click (a: add to selection, A: select by type)
  Tab           - Cycle focus between scene, palette and config panel
  e             - Open the config panel of the hovered object
  Ctrl+S        - Save
  F1 / ?        - Help
  Ctrl+Q / F10  - Quit

Examples:
  tsced edit lvl_1
  tsced edit --new lvl_2
  tsced edit --world --new overworld`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse stored levels and worlds",
	Long: `Start the editor with the document browser.

Controls:
  Up/Down/j/k  - Navigate
  Tab          - Switch between levels and worlds
  Enter        - Open document
  n            - New document
  d            - Delete document
  q            - Quit

Leaving an editor through its menu returns to the browser.`,
	RunE: runMenu,
}

func init() {
	editCmd.Flags().BoolVar(&flagWorld, "world", false, "Edit a world instead of a level")
	editCmd.Flags().BoolVar(&flagNew, "new", false, "Create the document if it does not exist")
}

func runEdit(_ *cobra.Command, args []string) error {
	kind := storage.KindLevel
	if flagWorld {
		kind = storage.KindWorld
	}
	return runEditor(&tui.Target{Kind: kind, Name: args[0], Create: flagNew})
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runEditor(nil)
}

func runEditor(open *tui.Target) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	// The TUI owns the terminal; keep the log off the screen.
	logFile, err := openLogFile()
	if err == nil {
		defer logFile.Close()
		logger.SetOutput(logFile)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if open != nil {
		exists, err := store.Exists(open.Kind, open.Name)
		if err != nil {
			return err
		}
		if !exists && !open.Create {
			return fmt.Errorf("%s %q does not exist (use --new to create it)", open.Kind, open.Name)
		}
		// --new on an existing document just opens it
		open.Create = !exists
	}

	ws, err := tui.NewWorkspace(cfg, store, logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	keys := tui.DefaultEditorKeyMap()
	if err := keys.Override(cfg.Keys); err != nil {
		return err
	}

	return tui.Run(ws, store, keys, runtimeConfig(cfg), open)
}

func runtimeConfig(cfg config.EditorConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if cfg.FPS > 0 {
		rc.TickRate = cfg.FPS
	}
	if cfg.DisplayScale > 0 {
		rc.DisplayScale = cfg.DisplayScale
	}
	return rc
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tsced")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "tsced.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
