// Package storage defines the TemplateStore contract and its filesystem
// implementation. A template is a directory of immutable, semantically
// versioned snapshots; each snapshot is one directory holding a metadata
// record and a content blob.
package storage

import (
	"github.com/promptdepot/promptdepot/internal/models"
)

// CreationStrategy determines the initial content of a newly created version.
type CreationStrategy string

const (
	// FromPreviousVersion copies the content of the current latest version.
	// Falls back to empty content with a logged warning when the template has
	// no versions yet.
	FromPreviousVersion CreationStrategy = "from_previous_version"

	// Empty creates the version with empty content.
	Empty CreationStrategy = "empty"

	// WithContent creates the version with caller-supplied content. Falls
	// back to empty content with a logged warning when none is supplied.
	WithContent CreationStrategy = "with_content"
)

// CreateOptions collects the optional arguments to CreateVersion.
type CreateOptions struct {
	Strategy CreationStrategy
	Content  *string
}

// CreateOption configures a CreateVersion call.
type CreateOption func(*CreateOptions)

// WithStrategy selects the content-creation strategy.
func WithStrategy(s CreationStrategy) CreateOption {
	return func(o *CreateOptions) { o.Strategy = s }
}

// WithInitialContent supplies explicit content for the new version. Only
// honored by the WithContent strategy; other strategies ignore it with a
// logged warning.
func WithInitialContent(content string) CreateOption {
	return func(o *CreateOptions) { o.Content = &content }
}

func newCreateOptions(opts []CreateOption) CreateOptions {
	o := CreateOptions{Strategy: FromPreviousVersion}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// TemplateStore is the capability set any storage backend must implement.
// All methods return typed errors from internal/errors; see each method for
// the failure policy.
type TemplateStore interface {
	// ListTemplates enumerates all templates with at least one valid version,
	// ordered by template ID. Unreadable templates are skipped with a logged
	// warning or error; the call never fails because of one bad entry.
	ListTemplates() ([]models.Template, error)

	// GetTemplate returns a template and its latest version. NotFound when
	// the template has zero valid versions.
	GetTemplate(templateID string) (*models.Template, error)

	// CreateTemplate creates a template by creating its initial version with
	// empty content. AlreadyExists when the initial version already exists.
	CreateTemplate(templateID string) error

	// ListTemplateVersions returns the valid versions of a template in
	// directory-scan order, not semver order. NotFound when the template
	// directory itself is absent; invalid children are skipped.
	ListTemplateVersions(templateID string) ([]models.TemplateVersion, error)

	// GetTemplateVersion returns one version's metadata. Unlike listing, a
	// targeted lookup propagates NotFound, ValidationFailure, and IOFailure
	// directly.
	GetTemplateVersion(templateID, version string) (*models.TemplateVersion, error)

	// GetLatestVersion returns the maximum valid version by semantic-version
	// precedence. NotFound when the template has no valid versions.
	GetLatestVersion(templateID string) (*models.TemplateVersion, error)

	// CreateVersion creates a new immutable version. The version directory is
	// claimed atomically; AlreadyExists when it is already present. A nil
	// metadata record is replaced by a fresh default one.
	CreateVersion(templateID, version string, metadata *models.TemplateVersionMetadata, opts ...CreateOption) error

	// GetTemplateVersionContent returns the raw content blob of one version.
	// Fails with NotFound under the same conditions as GetTemplateVersion.
	GetTemplateVersionContent(templateID, version string) (string, error)
}
