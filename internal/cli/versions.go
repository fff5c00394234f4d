package cli

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	storeerrors "github.com/promptdepot/promptdepot/internal/errors"
	"github.com/promptdepot/promptdepot/internal/storage"
	"github.com/promptdepot/promptdepot/internal/ui"
)

func newVersionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Manage versions of a prompt template",
	}

	cmd.AddCommand(newVersionsCreateCmd(app))
	cmd.AddCommand(newVersionsLsCmd(app))
	cmd.AddCommand(newVersionsShowCmd(app))

	return cmd
}

func newVersionsCreateCmd(app *App) *cobra.Command {
	var (
		version      string
		fromPrevious bool
		empty        bool
		withContent  bool
		content      string
	)

	cmd := &cobra.Command{
		Use:   "create <template-id>",
		Short: "Create a new version of a prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]

			if version == "" {
				tmpl, err := app.Store.GetTemplate(templateID)
				if err != nil {
					return err
				}
				version, err = ui.Input(
					"Please enter a version identifier",
					ui.WithDescription(fmt.Sprintf("Current version is %s.", tmpl.LatestVersion)),
					ui.WithValidate(func(s string) error {
						_, err := semver.StrictNewVersion(s)
						return err
					}))
				if err != nil {
					return err
				}
			}

			strategy := storage.FromPreviousVersion
			switch {
			case empty:
				strategy = storage.Empty
			case withContent:
				strategy = storage.WithContent
			case fromPrevious:
				strategy = storage.FromPreviousVersion
			}

			contentSet := cmd.Flags().Changed("content")
			if strategy != storage.WithContent && contentSet {
				ui.Warning("Content provided will be ignored because of the creation strategy.")
			}

			if strategy == storage.WithContent && !contentSet {
				var err error
				content, err = ui.Text("Enter the content for the new version")
				if err != nil {
					return err
				}
				contentSet = true
			}

			opts := []storage.CreateOption{storage.WithStrategy(strategy)}
			if contentSet {
				opts = append(opts, storage.WithInitialContent(content))
			}

			if err := app.Store.CreateVersion(templateID, version, nil, opts...); err != nil {
				if storeerrors.IsAlreadyExists(err) {
					ui.Error(fmt.Sprintf("Version %q for template %q already exists.", version, templateID))
					return nil
				}
				return err
			}

			ui.Success(fmt.Sprintf("Version %q for template %q created successfully!", version, templateID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "The version identifier; prompted for when omitted")
	cmd.Flags().BoolVarP(&fromPrevious, "from-previous", "p", false, "Copy content from the previous version (default)")
	cmd.Flags().BoolVar(&empty, "empty", false, "Create the new version with empty content")
	cmd.Flags().BoolVar(&withContent, "with-content", false, "Create the new version with supplied content")
	cmd.Flags().StringVarP(&content, "content", "c", "", "The content for the new version")
	cmd.MarkFlagsMutuallyExclusive("from-previous", "empty", "with-content")

	return cmd
}

func newVersionsLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <template-id>",
		Short: "List all versions of a prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]

			versions, err := app.Store.ListTemplateVersions(templateID)
			if err != nil {
				if storeerrors.IsNotFound(err) {
					ui.Error(fmt.Sprintf("Template %q not found.", templateID))
					return nil
				}
				return err
			}

			fmt.Println(ui.VersionsTable(templateID, versions))
			return nil
		},
	}
}

func newVersionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id> <version>",
		Short: "Show a specific version of a prompt template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, version := args[0], args[1]

			tv, err := app.Store.GetTemplateVersion(templateID, version)
			if err != nil {
				if storeerrors.IsNotFound(err) {
					ui.Error(fmt.Sprintf("Version %q for template %q not found.", version, templateID))
					return nil
				}
				return err
			}

			content, err := app.Store.GetTemplateVersionContent(templateID, version)
			if err != nil {
				return err
			}

			meta := tv.Metadata
			ui.Field("Template ID", templateID)
			ui.Field("Version", tv.Version.String())
			ui.Field("Description", meta.Description)
			ui.Field("Created At", meta.CreatedAt.Format(time.RFC3339))
			ui.Field("Author", meta.Author)
			ui.Field("Tags", joinComma(meta.Tags))
			ui.Field("Model", meta.Model)
			ui.Field("Changelog", "")
			for _, change := range meta.Changelog {
				fmt.Println("- " + change)
			}
			ui.Field("Content", "")
			fmt.Println(content)
			return nil
		},
	}
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
