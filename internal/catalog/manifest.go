package catalog

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// ErrLegacyTag is returned when an items manifest entry expands into more
// than one object. Manifests must only use current single-object types.
var ErrLegacyTag = errors.New("catalog: legacy multi-object tag in items manifest")

// Manifest property keys consumed by the loader itself.
const (
	PropObjectName = "object_name"
	PropObjectTags = "object_tags"
)

// Factory builds the objects for a type name from a flat attribute bag.
type Factory func(name string, attrs map[string]string) ([]*scene.Sprite, error)

// LoadManifestItems reads an items manifest and builds one template per
// <item>. A factory that yields no object is logged and skipped; one that
// yields several aborts the whole load with ErrLegacyTag and no templates.
func (l *Loader) LoadManifestItems(path string, factory Factory) ([]*ItemTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open items manifest: %w", err)
	}
	defer f.Close()

	items, err := l.ReadManifestItems(f, path, factory)
	if err != nil {
		return nil, err
	}
	l.Logger.Debug("manifest items loaded", "file", path, "count", len(items))
	return items, nil
}

// ReadManifestItems is LoadManifestItems over an open reader; name is used
// in messages only.
func (l *Loader) ReadManifestItems(r io.Reader, name string, factory Factory) ([]*ItemTemplate, error) {
	var items []*ItemTemplate

	err := DecodeItems(r, func(props map[string]string) error {
		objName := props[PropObjectName]
		tagString := props[PropObjectTags]
		delete(props, PropObjectName)
		delete(props, PropObjectTags)

		objs, err := factory(objName, props)
		if err != nil {
			l.Logger.Warn("editor item could not be created", "object", objName, "err", err)
			return nil
		}
		switch {
		case len(objs) == 0:
			l.Logger.Warn("editor item could not be created", "object", objName)
			return nil
		case len(objs) > 1:
			return fmt.Errorf("%w: %q in %s", ErrLegacyTag, objName, name)
		}

		obj := objs[0]
		obj.Tags = tagString

		item := newTemplate(tagString, l.MasterTag)
		item.Name = displayName(obj, objName)
		item.Image = obj.Image
		if item.Image == "" {
			item.Image = l.Placeholder
		}
		item.Rotation = obj.Rotation
		item.Object = obj
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func displayName(obj *scene.Sprite, fallback string) string {
	if obj.Name != "" {
		return obj.Name
	}
	return fallback
}

// DecodeItems streams a manifest and calls fn with the property bag of
// each element that closes around <property> children. The root element
// is ignored.
func DecodeItems(r io.Reader, fn func(map[string]string) error) error {
	dec := xml.NewDecoder(r)
	props := map[string]string{}
	depth := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("catalog: parse manifest: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "property" || t.Name.Local == "Property" {
				var key, value string
				for _, a := range t.Attr {
					switch a.Name.Local {
					case "name":
						key = a.Value
					case "value":
						value = a.Value
					}
				}
				props[key] = value
			}
		case xml.EndElement:
			depth--
			switch {
			case t.Name.Local == "property" || t.Name.Local == "Property":
			case depth == 0:
				// root element
			default:
				bag := props
				props = map[string]string{}
				if err := fn(bag); err != nil {
					return err
				}
			}
		}
	}
}
