package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/promptdepot/promptdepot/internal/errors"
	"github.com/promptdepot/promptdepot/internal/models"
)

const (
	// DefaultMetadataFileName is the metadata record inside a version directory.
	DefaultMetadataFileName = "metadata.yml"
	// DefaultTemplateFileName is the content blob inside a version directory.
	DefaultTemplateFileName = "template.md"
	// DefaultInitialVersion is the version CreateTemplate starts a template at.
	DefaultInitialVersion = "1.0.0"
)

// Options configures a LocalTemplateStore. Zero values fall back to defaults;
// an empty BasePath resolves to ~/.promptdepot/templates.
type Options struct {
	BasePath         string `mapstructure:"base_path"`
	MetadataFileName string `mapstructure:"metadata_file_name"`
	TemplateFileName string `mapstructure:"template_file_name"`
	InitialVersion   string `mapstructure:"initial_version"`
}

// LocalTemplateStore implements TemplateStore on a local filesystem. Each
// (template, version) pair maps to base/<id>/<version>/ holding one metadata
// file and one content file. The store keeps no state between calls beyond
// this configuration; the directory-claim in CreateVersion is the only
// synchronization with other writers.
type LocalTemplateStore struct {
	basePath       string
	metadataFile   string
	templateFile   string
	initialVersion *semver.Version
	log            zerolog.Logger
}

// NewLocalTemplateStore creates a filesystem-backed store rooted at
// opts.BasePath.
func NewLocalTemplateStore(opts Options, log *zerolog.Logger) (*LocalTemplateStore, error) {
	basePath := opts.BasePath
	if basePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.IOError("resolving home directory", err)
		}
		basePath = filepath.Join(homeDir, ".promptdepot", "templates")
	}

	metadataFile := opts.MetadataFileName
	if metadataFile == "" {
		metadataFile = DefaultMetadataFileName
	}
	templateFile := opts.TemplateFileName
	if templateFile == "" {
		templateFile = DefaultTemplateFileName
	}

	initial := opts.InitialVersion
	if initial == "" {
		initial = DefaultInitialVersion
	}
	initialVersion, err := semver.StrictNewVersion(initial)
	if err != nil {
		return nil, errors.ValidationError("parsing initial version "+initial, err)
	}

	return &LocalTemplateStore{
		basePath:       basePath,
		metadataFile:   metadataFile,
		templateFile:   templateFile,
		initialVersion: initialVersion,
		log:            log.With().Str("component", "storage.local").Logger(),
	}, nil
}

// BasePath returns the root directory of the store.
func (s *LocalTemplateStore) BasePath() string {
	return s.basePath
}

func (s *LocalTemplateStore) versionPath(templateID string, version *semver.Version) string {
	return filepath.Join(s.basePath, templateID, version.String())
}

// parseVersion validates a version identifier. The canonical string form of
// the result names the version directory on disk.
func parseVersion(version string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, errors.ValidationError("parsing version "+version, err)
	}
	return v, nil
}

// readVersionMetadata loads and validates the metadata record at path.
func (s *LocalTemplateStore) readVersionMetadata(path string) (*models.TemplateVersionMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("metadata file not found at %q", path)
		}
		return nil, errors.IOError("reading metadata file "+path, err)
	}

	var meta models.TemplateVersionMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, errors.ValidationError("parsing metadata file "+path, err)
	}
	if err := meta.Validate(); err != nil {
		return nil, errors.ValidationError("validating metadata file "+path, err)
	}

	return &meta, nil
}

// GetTemplateVersion implements TemplateStore. A version is valid only when
// both its metadata record and its content file are present and well formed.
func (s *LocalTemplateStore) GetTemplateVersion(templateID, version string) (*models.TemplateVersion, error) {
	v, err := parseVersion(version)
	if err != nil {
		return nil, err
	}

	versionPath := s.versionPath(templateID, v)
	meta, err := s.readVersionMetadata(filepath.Join(versionPath, s.metadataFile))
	if err != nil {
		return nil, err
	}

	contentPath := filepath.Join(versionPath, s.templateFile)
	if _, err := os.Stat(contentPath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError(
				"template file not found at %q for template %q version %q", contentPath, templateID, version)
		}
		return nil, errors.IOError("checking template file "+contentPath, err)
	}

	return &models.TemplateVersion{
		TemplateID: templateID,
		Version:    v,
		Metadata:   *meta,
	}, nil
}

// GetTemplateVersionContent implements TemplateStore. Content is returned
// verbatim with no transformation; template syntax is the renderer's concern.
func (s *LocalTemplateStore) GetTemplateVersionContent(templateID, version string) (string, error) {
	tv, err := s.GetTemplateVersion(templateID, version)
	if err != nil {
		return "", err
	}

	contentPath := filepath.Join(s.versionPath(templateID, tv.Version), s.templateFile)
	data, err := os.ReadFile(contentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFoundError("template file not found at %q", contentPath)
		}
		return "", errors.IOError("reading template file "+contentPath, err)
	}

	return string(data), nil
}

// ListTemplateVersions implements TemplateStore. Versions come back in
// directory-scan order, not semver order; callers needing the latest version
// use GetLatestVersion, which takes the maximum explicitly.
func (s *LocalTemplateStore) ListTemplateVersions(templateID string) ([]models.TemplateVersion, error) {
	templateDir := filepath.Join(s.basePath, templateID)
	entries, err := os.ReadDir(templateDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("template %q not found", templateID)
		}
		return nil, errors.IOError("reading template directory "+templateDir, err)
	}

	versions := make([]models.TemplateVersion, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := semver.StrictNewVersion(name); err != nil {
			s.log.Warn().
				Str("template", templateID).
				Str("directory", name).
				Msg("skipping directory that is not a semantic version")
			continue
		}

		tv, err := s.GetTemplateVersion(templateID, name)
		if err != nil {
			// A single bad version must not make the whole template unusable.
			if errors.IsNotFound(err) {
				s.log.Warn().
					Str("template", templateID).
					Str("version", name).
					Msg("skipping incomplete version")
			} else {
				s.log.Error().
					Err(err).
					Str("template", templateID).
					Str("version", name).
					Msg("skipping unreadable version")
			}
			continue
		}
		versions = append(versions, *tv)
	}

	return versions, nil
}

// GetLatestVersion implements TemplateStore.
func (s *LocalTemplateStore) GetLatestVersion(templateID string) (*models.TemplateVersion, error) {
	versions, err := s.ListTemplateVersions(templateID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, errors.NotFoundError("no versions found for template %q", templateID)
	}

	latest := versions[0]
	for _, tv := range versions[1:] {
		if tv.Version.GreaterThan(latest.Version) {
			latest = tv
		}
	}
	return &latest, nil
}

// GetTemplate implements TemplateStore. A template with zero valid versions
// does not exist.
func (s *LocalTemplateStore) GetTemplate(templateID string) (*models.Template, error) {
	latest, err := s.GetLatestVersion(templateID)
	if err != nil {
		return nil, err
	}
	return &models.Template{ID: templateID, LatestVersion: latest.Version}, nil
}

// ListTemplates implements TemplateStore. Ordering is by template ID, which
// os.ReadDir already guarantees. A missing base directory reads as an empty
// store rather than an error.
func (s *LocalTemplateStore) ListTemplates() ([]models.Template, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn().Str("path", s.basePath).Msg("store base directory does not exist")
			return []models.Template{}, nil
		}
		return nil, errors.IOError("reading store directory "+s.basePath, err)
	}

	templates := make([]models.Template, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		templateID := entry.Name()

		tmpl, err := s.GetTemplate(templateID)
		if err != nil {
			if errors.IsNotFound(err) {
				s.log.Warn().
					Str("template", templateID).
					Msg("no valid versions found for template, skipping")
			} else {
				s.log.Error().
					Err(err).
					Str("template", templateID).
					Msg("error reading template, skipping")
			}
			continue
		}
		templates = append(templates, *tmpl)
	}

	return templates, nil
}

// CreateVersion implements TemplateStore. The directory claim via os.Mkdir is
// the sole concurrency primitive: of two racing creators exactly one wins the
// claim and the loser observes AlreadyExists without writing anything. The
// two file writes after the claim are not atomic as a pair; a reader racing
// between them sees the version as NotFound until both files exist.
func (s *LocalTemplateStore) CreateVersion(templateID, version string, metadata *models.TemplateVersionMetadata, opts ...CreateOption) error {
	v, err := parseVersion(version)
	if err != nil {
		return err
	}

	o := newCreateOptions(opts)
	if o.Content != nil && o.Strategy != WithContent {
		s.log.Warn().
			Str("template", templateID).
			Str("version", version).
			Str("strategy", string(o.Strategy)).
			Msg("content provided will be ignored because of the creation strategy")
	}

	content, err := s.resolveContent(templateID, version, o)
	if err != nil {
		return err
	}

	if metadata == nil {
		metadata = models.NewVersionMetadata(templateID, v)
	} else {
		// Never mutate the caller's record.
		record := *metadata
		metadata = &record
		metadata.TemplateID = templateID
		metadata.Version = v.String()
		if metadata.CreatedAt.IsZero() {
			metadata.CreatedAt = time.Now().UTC()
		}
	}
	if err := metadata.Validate(); err != nil {
		return errors.ValidationError("validating metadata for version "+version, err)
	}

	metadataBytes, err := yaml.Marshal(metadata)
	if err != nil {
		return errors.ValidationError("encoding metadata for version "+version, err)
	}

	templateDir := filepath.Join(s.basePath, templateID)
	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		return errors.IOError("creating template directory "+templateDir, err)
	}

	versionPath := s.versionPath(templateID, v)
	if err := os.Mkdir(versionPath, 0o755); err != nil {
		if os.IsExist(err) {
			return errors.AlreadyExistsError(
				"version %q for template %q already exists", version, templateID)
		}
		return errors.IOError("creating version directory "+versionPath, err)
	}

	metadataPath := filepath.Join(versionPath, s.metadataFile)
	if err := os.WriteFile(metadataPath, metadataBytes, 0o644); err != nil {
		return errors.IOError("writing metadata file "+metadataPath, err)
	}

	contentPath := filepath.Join(versionPath, s.templateFile)
	if err := os.WriteFile(contentPath, []byte(content), 0o644); err != nil {
		return errors.IOError("writing template file "+contentPath, err)
	}

	return nil
}

// resolveContent computes the initial content for a new version per its
// creation strategy.
func (s *LocalTemplateStore) resolveContent(templateID, version string, o CreateOptions) (string, error) {
	switch o.Strategy {
	case FromPreviousVersion:
		latest, err := s.GetLatestVersion(templateID)
		if err != nil {
			if errors.IsNotFound(err) {
				s.log.Warn().
					Str("template", templateID).
					Str("version", version).
					Msg("no existing versions found, creating new version with empty content")
				return "", nil
			}
			return "", err
		}
		return s.GetTemplateVersionContent(templateID, latest.Version.String())

	case Empty:
		return "", nil

	case WithContent:
		if o.Content == nil {
			s.log.Warn().
				Str("template", templateID).
				Str("version", version).
				Msg("no content provided, creating new version with empty content")
			return "", nil
		}
		return *o.Content, nil

	default:
		return "", errors.ValidationError("unknown creation strategy "+string(o.Strategy), nil)
	}
}

// CreateTemplate implements TemplateStore. Creating a template is creating
// its initial version with empty content; there is no separate template
// record on disk.
func (s *LocalTemplateStore) CreateTemplate(templateID string) error {
	return s.CreateVersion(templateID, s.initialVersion.String(), nil, WithStrategy(Empty))
}
