package storage

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/promptdepot/promptdepot/internal/errors"
)

// Factory constructs a TemplateStore from its configuration.
type Factory func(opts Options, log *zerolog.Logger) (TemplateStore, error)

// backends maps a configuration key to a store constructor. Resolution
// happens once at process start; there is no dynamic loading.
var backends = map[string]Factory{}

// Register makes a store backend available under the given name. Registering
// the same name twice replaces the earlier factory; the last registration
// wins.
func Register(name string, factory Factory) {
	backends[name] = factory
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open constructs the store backend registered under name.
func Open(name string, opts Options, log *zerolog.Logger) (TemplateStore, error) {
	factory, ok := backends[name]
	if !ok {
		return nil, errors.ValidationError("unknown store backend "+name, nil)
	}
	return factory(opts, log)
}

func init() {
	Register("local", func(opts Options, log *zerolog.Logger) (TemplateStore, error) {
		return NewLocalTemplateStore(opts, log)
	})
}
