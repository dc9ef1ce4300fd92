package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

// SettingsExt is the extension of image descriptor files.
const SettingsExt = ".settings"

// Settings is the parsed content of an image descriptor.
type Settings struct {
	Base       string // sibling image used when no same-named png exists
	Name       string
	EditorTags string
	Rotation   [3]float64
	Massive    core.MassiveType
	Width      int
	Height     int
}

// ParseSettings reads a descriptor: one "key value..." pair per line.
// Blank lines, '#' comments and unknown keys are skipped.
func ParseSettings(r io.Reader) (*Settings, error) {
	s := &Settings{Massive: core.MassPassive}
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, _ := strings.Cut(text, " ")
		value = strings.TrimSpace(value)

		switch key {
		case "base":
			// base may carry trailing width/height, only the file matters here
			s.Base, _, _ = strings.Cut(value, " ")
		case "name":
			s.Name = value
		case "editor_tags":
			s.EditorTags = value
		case "rotation":
			fields := strings.Fields(value)
			for i := 0; i < len(fields) && i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					return nil, fmt.Errorf("catalog: line %d: rotation: %w", line, err)
				}
				s.Rotation[i] = f
			}
		case "massive_type", "type":
			if m := core.ParseMassiveType(value); m != core.MassInvalid {
				s.Massive = m
			}
		case "width":
			s.Width, _ = strconv.Atoi(value)
		case "height":
			s.Height, _ = strconv.Atoi(value)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read settings: %w", err)
	}

	return s, nil
}

// LoadSettings parses the descriptor at path.
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open settings: %w", err)
	}
	defer f.Close()

	s, err := ParseSettings(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return s, nil
}
