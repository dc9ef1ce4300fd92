package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsc-editor/internal/registry"
	"github.com/vovakirdan/tsc-editor/internal/storage"
)

var flagListWorld bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored levels or worlds",
	Long: `Shows the levels (or worlds with --world) stored in the database.

Examples:
  tsced list
  tsced list --world`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List placeable object types",
	Long:  `Shows every object type the editors can place, with its editable attributes.`,
	Args:  cobra.NoArgs,
	Run:   runTypes,
}

func init() {
	listCmd.Flags().BoolVar(&flagListWorld, "world", false, "List worlds instead of levels")
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	kind := storage.KindLevel
	if flagListWorld {
		kind = storage.KindWorld
	}
	records, err := store.List(kind)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No %ss stored yet.\n", kind)
		fmt.Println()
		fmt.Println("Run 'tsced edit --new <name>' to create one.")
		return nil
	}

	maxName := len("Name")
	for _, r := range records {
		maxName = max(maxName, len(r.Name))
	}

	color.Bold.Printf("  %-*s  %7s  %s\n", maxName, "Name", "Objects", "Updated")
	fmt.Printf("  %-*s  %7s  %s\n", maxName, "----", "-------", "-------")
	for _, r := range records {
		fmt.Printf("  %s  %7d  %s\n",
			color.Cyan.Sprintf("%-*s", maxName, r.Name),
			r.Objects,
			color.Gray.Sprint(r.UpdatedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

func runTypes(_ *cobra.Command, _ []string) {
	types := registry.List()
	if len(types) == 0 {
		fmt.Println("No object types registered.")
		return
	}

	maxName := len("Type")
	for _, t := range types {
		maxName = max(maxName, len(t.Name))
	}

	color.Bold.Printf("  %-*s  %s\n", maxName, "Type", "Title")
	fmt.Printf("  %-*s  %s\n", maxName, "----", "-----")
	for _, t := range types {
		title := t.Title
		if t.Legacy {
			title += color.Yellow.Sprint(" (legacy)")
		}
		fmt.Printf("  %s  %s\n", color.Green.Sprintf("%-*s", maxName, t.Name), title)
		for _, f := range t.Fields {
			fmt.Printf("  %-*s    %s\n", maxName, "", color.Gray.Sprintf("%s: %s", f.Key, f.Label))
		}
	}
}
