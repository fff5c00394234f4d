// Package models defines the value objects exchanged between the template
// store, the renderer layer, and the CLI.
package models

import (
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Template is a named, versioned collection of content snapshots. It is
// derived on demand from a template's valid versions and exists only as a
// query result; nothing on disk stores it directly.
type Template struct {
	ID            string
	LatestVersion *semver.Version
}

// TemplateVersionMetadata describes one immutable version of a template. It is
// persisted as the YAML metadata record alongside each version's content.
// Unknown fields in the file are ignored on read; a missing version field
// fails validation.
type TemplateVersionMetadata struct {
	TemplateID  string    `yaml:"template_id,omitempty"`
	Version     string    `yaml:"version" validate:"required,semver"`
	CreatedAt   time.Time `yaml:"created_at"`
	Description string    `yaml:"description,omitempty"`
	Author      string    `yaml:"author,omitempty"`
	Tags        []string  `yaml:"tags,omitempty"`
	Model       string    `yaml:"model,omitempty"`
	Changelog   []string  `yaml:"changelog,omitempty"`
}

// NewVersionMetadata returns a fresh metadata record for the given template
// and version, stamped with the current time. Always a new value, never a
// shared default.
func NewVersionMetadata(templateID string, version *semver.Version) *TemplateVersionMetadata {
	return &TemplateVersionMetadata{
		TemplateID: templateID,
		Version:    version.String(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Validate checks that the metadata record is well formed.
func (m *TemplateVersionMetadata) Validate() error {
	return validate.Struct(m)
}

// TemplateVersion is a read-only composite returned by version lookups. It
// carries metadata only; content is fetched separately so metadata queries
// never pay for large payloads.
type TemplateVersion struct {
	TemplateID string
	Version    *semver.Version
	Metadata   TemplateVersionMetadata
}
