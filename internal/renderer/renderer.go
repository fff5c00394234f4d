// Package renderer provides pluggable text-substitution engines for prompt
// content. An engine compiles a template string once and renders it against a
// key/value context; the store never calls into this package, rendering is a
// layer above it.
package renderer

import (
	"sort"

	"github.com/promptdepot/promptdepot/internal/errors"
)

// PromptRenderer renders a compiled template against a context map.
type PromptRenderer interface {
	Render(context map[string]any) (string, error)
}

// Factory compiles a template string into a renderer. Compilation errors
// surface here, not at render time.
type Factory func(template string) (PromptRenderer, error)

// engines maps a configuration key to a renderer factory.
var engines = map[string]Factory{}

// Register makes a rendering engine available under the given name.
func Register(name string, factory Factory) {
	engines[name] = factory
}

// Engine returns the factory registered under name.
func Engine(name string) (Factory, error) {
	factory, ok := engines[name]
	if !ok {
		return nil, errors.ValidationError("unknown rendering engine "+name, nil)
	}
	return factory, nil
}

// Engines returns the registered engine names, sorted.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
