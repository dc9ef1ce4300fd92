package catalog

import (
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// DefaultPlaceholder is the image ident used when an item's image is missing.
const DefaultPlaceholder = "game/image_not_found.png"

// defaultItemSize is used when neither the descriptor nor the png give a size.
const defaultItemSize = 32

// Loader turns descriptor directories and items manifests into templates.
type Loader struct {
	PixmapsDir  string         // root all image idents are relative to
	Placeholder string         // ident substituted for missing images
	MasterTag   string         // "level" or "world"
	Cache       *SettingsCache // optional
	Logger      *log.Logger
}

// NewLoader creates a loader for the given pixmaps root and master tag.
func NewLoader(pixmapsDir, masterTag string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		PixmapsDir:  pixmapsDir,
		Placeholder: DefaultPlaceholder,
		MasterTag:   masterTag,
		Logger:      logger,
	}
}

// Ident returns path relative to the pixmaps root with forward slashes.
// Paths outside the root are returned cleaned but otherwise unchanged.
func (l *Loader) Ident(path string) string {
	rel, err := filepath.Rel(l.PixmapsDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return filepath.ToSlash(rel)
}

// LoadImageItems walks dir for descriptor files and returns one template
// per descriptor, sorted by path. Broken descriptors are logged and
// skipped; only an unreadable dir is returned as an error.
func (l *Loader) LoadImageItems(dir string) ([]*ItemTemplate, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			l.Logger.Warn("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), SettingsExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	items := make([]*ItemTemplate, 0, len(paths))
	for _, path := range paths {
		item, err := l.loadImageItem(path)
		if err != nil {
			l.Logger.Warn("skipping image item", "settings", path, "err", err)
			continue
		}
		items = append(items, item)
	}

	l.Logger.Debug("image items loaded", "dir", dir, "count", len(items))
	return items, nil
}

func (l *Loader) settings(path string) (*Settings, error) {
	if l.Cache != nil {
		return l.Cache.Load(path)
	}
	return LoadSettings(path)
}

func (l *Loader) loadImageItem(path string) (*ItemTemplate, error) {
	s, err := l.settings(path)
	if err != nil {
		return nil, err
	}

	image, w, h := l.resolveImage(path, s)
	if s.Width > 0 {
		w = s.Width
	}
	if s.Height > 0 {
		h = s.Height
	}

	name := s.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	obj := scene.NewSprite(image, w, h)
	obj.Name = name
	obj.Rotation = s.Rotation
	obj.Tags = s.EditorTags
	obj.SetMassive(s.Massive)

	item := newTemplate(s.EditorTags, l.MasterTag)
	item.Name = name
	item.Image = image
	item.Rotation = s.Rotation
	item.Object = obj
	return item, nil
}

// resolveImage picks the same-named png, then the base sibling, then the
// placeholder. The placeholder case logs exactly one warning.
func (l *Loader) resolveImage(settingsPath string, s *Settings) (string, int, int) {
	if ident, w, h, ok := l.descriptorImage(settingsPath, s); ok {
		return ident, w, h
	}
	l.Logger.Warn("image not found, using placeholder",
		"settings", settingsPath, "base", s.Base, "placeholder", l.Placeholder)
	return l.Placeholder, defaultItemSize, defaultItemSize
}

func (l *Loader) descriptorImage(settingsPath string, s *Settings) (string, int, int, bool) {
	candidate := strings.TrimSuffix(settingsPath, filepath.Ext(settingsPath)) + ".png"
	if w, h, ok := pngSize(candidate); ok {
		return l.Ident(candidate), w, h, true
	}
	if s.Base != "" {
		candidate = filepath.Join(filepath.Dir(settingsPath), s.Base)
		if w, h, ok := pngSize(candidate); ok {
			return l.Ident(candidate), w, h, true
		}
	}
	return "", 0, 0, false
}

// FindImage resolves an image ident to the ident of an existing image.
// Descriptor idents resolve to their image the way palette items do;
// no placeholder is substituted.
func (l *Loader) FindImage(ident string) (string, bool) {
	if ident == "" {
		return "", false
	}
	path := filepath.FromSlash(ident)
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.PixmapsDir, path)
	}

	if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
		return "", false
	}
	if filepath.Ext(path) != SettingsExt {
		return l.Ident(path), true
	}

	s, err := l.settings(path)
	if err != nil {
		return "", false
	}
	found, _, _, ok := l.descriptorImage(path, s)
	return found, ok
}

// pngSize reports whether path exists and, when it is a decodable png,
// its dimensions.
func pngSize(path string) (int, int, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return defaultItemSize, defaultItemSize, true
	}
	return cfg.Width, cfg.Height, true
}
