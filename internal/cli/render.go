package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	storeerrors "github.com/promptdepot/promptdepot/internal/errors"
	"github.com/promptdepot/promptdepot/internal/ui"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		version string
		vars    []string
	)

	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Render a template version with the configured engine",
		Long:  "Fetches the content of a template version and renders it against the key/value context supplied with --var. Uses the latest version when --version is omitted.",
		Args:  cobra.ExactArgs(1),
		Example: `  promptdepot render greeting --var name=Ada
  promptdepot render greeting --version 1.2.0 --var name=Ada --var place=Turin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]

			if version == "" {
				tmpl, err := app.Store.GetTemplate(templateID)
				if err != nil {
					if storeerrors.IsNotFound(err) {
						ui.Error(fmt.Sprintf("Template %q not found.", templateID))
						return nil
					}
					return err
				}
				version = tmpl.LatestVersion.String()
			}

			context := make(map[string]any, len(vars))
			for _, kv := range vars {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid --var %q, expected key=value", kv)
				}
				context[key] = value
			}

			rendered, err := app.Service.RenderPrompt(templateID, version, context)
			if err != nil {
				if storeerrors.IsNotFound(err) {
					ui.Error(fmt.Sprintf("Version %q for template %q not found.", version, templateID))
					return nil
				}
				return err
			}

			fmt.Print(rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "The version to render; latest when omitted")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "Context variable as key=value; repeatable")

	return cmd
}
