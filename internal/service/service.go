// Package service glues the template store to the rendering engines. It owns
// the renderer-instance cache: one compiled renderer per (template, version)
// pair, never evicted, which is safe because versions are immutable and cheap
// because compiled templates are small.
package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/promptdepot/promptdepot/internal/renderer"
	"github.com/promptdepot/promptdepot/internal/storage"
)

type rendererKey struct {
	templateID string
	version    string
}

// Service renders prompts out of a TemplateStore with a configured engine.
type Service struct {
	store   storage.TemplateStore
	factory renderer.Factory
	log     zerolog.Logger

	mu        sync.RWMutex
	renderers map[rendererKey]renderer.PromptRenderer
}

// New creates a service around a store and a rendering engine factory.
func New(store storage.TemplateStore, factory renderer.Factory, log *zerolog.Logger) *Service {
	return &Service{
		store:     store,
		factory:   factory,
		log:       log.With().Str("component", "service").Logger(),
		renderers: make(map[rendererKey]renderer.PromptRenderer),
	}
}

// Store exposes the underlying template store.
func (s *Service) Store() storage.TemplateStore {
	return s.store
}

// RenderPrompt fetches the content of one template version, compiles it with
// the configured engine (once per version, cached thereafter), and renders it
// against the given context.
func (s *Service) RenderPrompt(templateID, version string, context map[string]any) (string, error) {
	r, err := s.rendererFor(templateID, version)
	if err != nil {
		return "", err
	}
	return r.Render(context)
}

func (s *Service) rendererFor(templateID, version string) (renderer.PromptRenderer, error) {
	key := rendererKey{templateID: templateID, version: version}

	s.mu.RLock()
	r, ok := s.renderers[key]
	s.mu.RUnlock()
	if ok {
		return r, nil
	}

	content, err := s.store.GetTemplateVersionContent(templateID, version)
	if err != nil {
		return nil, err
	}

	compiled, err := s.factory(content)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have compiled the same version in the meantime;
	// keep the first entry so callers share one instance per key.
	if existing, ok := s.renderers[key]; ok {
		return existing, nil
	}
	s.renderers[key] = compiled
	s.log.Debug().Str("template", templateID).Str("version", version).Msg("cached renderer")
	return compiled, nil
}
