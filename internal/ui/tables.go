package ui

import (
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/promptdepot/promptdepot/internal/models"
)

// TemplatesTable formats the template list with each template's latest
// version.
func TemplatesTable(templates []models.Template) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Prompt Templates")
	t.AppendHeader(table.Row{"ID", "Latest Version"})

	for _, tmpl := range templates {
		t.AppendRow(table.Row{tmpl.ID, tmpl.LatestVersion.String()})
	}

	return t.Render()
}

// TemplateVersionsTable formats the version summary shown by templates show.
func TemplateVersionsTable(templateID string, latest string, versions []models.TemplateVersion) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Template: %s (%s)", templateID, latest)
	t.AppendHeader(table.Row{"Version", "Description"})

	for _, v := range versions {
		t.AppendRow(table.Row{v.Version.String(), v.Metadata.Description})
	}

	return t.Render()
}

// VersionsTable formats the full metadata listing shown by versions ls.
func VersionsTable(templateID string, versions []models.TemplateVersion) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Versions for Template: %s", templateID)
	t.AppendHeader(table.Row{"Version", "Description", "Created At", "Author", "Tags", "Model", "Changelog"})

	for _, v := range versions {
		meta := v.Metadata
		t.AppendRow(table.Row{
			v.Version.String(),
			meta.Description,
			meta.CreatedAt.Format(time.RFC3339),
			meta.Author,
			strings.Join(meta.Tags, ", "),
			meta.Model,
			strings.Join(meta.Changelog, "\n"),
		})
	}

	return t.Render()
}
