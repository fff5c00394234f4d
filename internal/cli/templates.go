package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	storeerrors "github.com/promptdepot/promptdepot/internal/errors"
	"github.com/promptdepot/promptdepot/internal/ui"
)

func newTemplatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage prompt templates",
	}

	cmd.AddCommand(newTemplatesCreateCmd(app))
	cmd.AddCommand(newTemplatesLsCmd(app))
	cmd.AddCommand(newTemplatesShowCmd(app))

	return cmd
}

func newTemplatesCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new prompt template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := ui.Input("Enter a unique template ID",
				ui.WithValidate(func(s string) error {
					if s == "" {
						return errors.New("template ID must not be empty")
					}
					return nil
				}))
			if err != nil {
				return err
			}

			if err := app.Store.CreateTemplate(templateID); err != nil {
				if storeerrors.IsAlreadyExists(err) {
					ui.Error(fmt.Sprintf("Template %q already exists.", templateID))
					return nil
				}
				return err
			}

			ui.Success(fmt.Sprintf("Template %q created successfully!", templateID))
			return nil
		},
	}
}

func newTemplatesLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all prompt templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Store.ListTemplates()
			if err != nil {
				return err
			}

			fmt.Println(ui.TemplatesTable(templates))
			return nil
		},
	}
}

func newTemplatesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show a specific prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]

			tmpl, err := app.Store.GetTemplate(templateID)
			if err != nil {
				if storeerrors.IsNotFound(err) {
					ui.Error(fmt.Sprintf("Template %q not found.", templateID))
					return nil
				}
				return err
			}

			versions, err := app.Store.ListTemplateVersions(templateID)
			if err != nil {
				return err
			}

			fmt.Println(ui.TemplateVersionsTable(templateID, tmpl.LatestVersion.String(), versions))
			return nil
		},
	}
}
