// Package registry provides a global registry for object factories.
// Object types register themselves in init() functions, allowing the item
// loaders and the storage layer to build objects by name without
// hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// ErrUnknownType is returned by Create for unregistered type names.
var ErrUnknownType = errors.New("registry: unknown object type")

// Factory builds the objects described by a flat attribute bag.
// Modern types return exactly one object; legacy types may expand into
// several, and an empty result means the attributes were unusable.
type Factory func(attrs map[string]string) []*scene.Sprite

// Field describes one editable attribute shown in the object config panel.
type Field struct {
	Key     string   // attribute key in Sprite.Props
	Label   string   // panel label
	Tip     string   // tooltip
	Choices []string // fixed choices; empty means free text
	Default string
}

// TypeInfo contains metadata about a registered object type.
type TypeInfo struct {
	Name   string  // name used in manifests and save records
	Title  string  // human-readable name
	Legacy bool    // may expand into more than one object
	Fields []Field // editable attributes, in panel order
}

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]TypeInfo)
	mu        sync.RWMutex
)

// Register adds an object factory to the registry.
// Typically called from an init() function.
// Panics if a type with the same name is already registered.
func Register(info TypeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.Name]; exists {
		panic(fmt.Sprintf("registry: object type %q already registered", info.Name))
	}

	factories[info.Name] = f
	infos[info.Name] = info
}

// List returns information about all registered types, sorted by name.
func List() []TypeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TypeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds the objects for a type name.
// Returns ErrUnknownType if the name is not registered.
func Create(name string, attrs map[string]string) ([]*scene.Sprite, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	return f(attrs), nil
}

// Info returns the metadata of a registered type.
func Info(name string) (TypeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[name]
	return info, ok
}

// Exists checks if a type with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
