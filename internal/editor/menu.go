package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/tsc-editor/internal/catalog"
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/tags"
)

// Tags with a fixed meaning in menu and item manifests.
const (
	TagLevel    = "level"
	TagWorld    = "world"
	TagHeader   = "header"
	TagFunction = "function"
)

// ErrBadMenu is returned for menu manifest entries missing a name or tags.
var ErrBadMenu = errors.New("editor: invalid menu manifest entry")

// MenuDef is one parsed menu manifest entry.
type MenuDef struct {
	Name     string
	Tags     []string
	Color    core.Color
	Header   bool
	Function bool
}

// LoadMenu parses the menu manifest at path.
func LoadMenu(path string) ([]MenuDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("editor: open menu manifest: %w", err)
	}
	defer f.Close()
	return ReadMenu(f)
}

// ReadMenu parses a menu manifest. Each <item> carries name, tags and an
// optional RRGGBBAA color property. The "header" and "function" tags set
// the matching flags and stay in the tag list.
func ReadMenu(r io.Reader) ([]MenuDef, error) {
	var defs []MenuDef
	err := catalog.DecodeItems(r, func(props map[string]string) error {
		name, ok := props["name"]
		if !ok || name == "" {
			return fmt.Errorf("%w: missing name", ErrBadMenu)
		}
		tagString, ok := props["tags"]
		if !ok {
			return fmt.Errorf("%w: %q has no tags", ErrBadMenu, name)
		}

		def := MenuDef{
			Name:  name,
			Tags:  tags.Split(tagString),
			Color: core.ColorWhite,
		}
		if c, ok := props["color"]; ok && c != "" {
			parsed, err := core.ParseColor(c)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrBadMenu, name, err)
			}
			def.Color = parsed
		}
		def.Header = tags.Contains(def.Tags, TagHeader)
		def.Function = tags.Contains(def.Tags, TagFunction)
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}
