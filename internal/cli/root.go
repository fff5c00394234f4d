// Package cli wires the cobra command tree: settings loading, logger and
// store construction, and the templates/versions/render command groups.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/promptdepot/promptdepot/internal/config"
	"github.com/promptdepot/promptdepot/internal/logger"
	"github.com/promptdepot/promptdepot/internal/renderer"
	"github.com/promptdepot/promptdepot/internal/service"
	"github.com/promptdepot/promptdepot/internal/storage"
)

// App holds the dependencies shared by all commands, resolved once before the
// first command runs.
type App struct {
	Settings *config.Settings
	Log      *zerolog.Logger
	Store    storage.TemplateStore
	Service  *service.Service
}

func (a *App) init(configFile string, verbose bool) error {
	settings, err := config.Load(configFile)
	if err != nil {
		return err
	}

	level := settings.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.NewConsoleLogger(level)

	store, err := storage.Open(settings.Store.Backend, settings.Store.Options, log)
	if err != nil {
		return err
	}

	factory, err := renderer.Engine(settings.Renderer.Engine)
	if err != nil {
		return err
	}

	a.Settings = settings
	a.Log = log
	a.Store = store
	a.Service = service.New(store, factory, log)
	return nil
}

// NewRootCmd builds the promptdepot command tree.
func NewRootCmd(version string) *cobra.Command {
	var (
		configFile string
		verbose    bool
	)

	app := &App{}

	root := &cobra.Command{
		Use:           "promptdepot",
		Short:         "Manage versioned prompt templates",
		Long:          "promptdepot stores prompt templates as immutable, semantically versioned snapshots and renders them with pluggable engines.",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(configFile, verbose)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to the config file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newTemplatesCmd(app))
	root.AddCommand(newVersionsCmd(app))
	root.AddCommand(newRenderCmd(app))

	return root
}
