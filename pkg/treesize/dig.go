package treesize

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/fs"
	"github.com/replicatedhq/treesize/pkg/logger"
	"github.com/replicatedhq/treesize/pkg/report"
	"github.com/replicatedhq/treesize/pkg/transcript"
	"github.com/replicatedhq/treesize/pkg/ui"
	"github.com/spf13/viper"
	"go.uber.org/dig"
)

func buildInjector(v *viper.Viper) (*dig.Container, error) {
	providers := []interface{}{
		func() *viper.Viper { return v },
		fs.NewBaseFilesystem,
		fs.NewOutputOpener,
		logger.New,
		ui.FromViper,
		transcript.NewLoader,
		report.NewRenderer,

		NewApp,
	}

	container := dig.New()

	for _, provider := range providers {
		err := container.Provide(provider)
		if err != nil {
			return nil, errors.Wrap(err, "register providers")
		}
	}

	return container, nil
}

// Get resolves an App from the injector for the given configuration
func Get(v *viper.Viper) (*App, error) {
	injector, err := buildInjector(v)
	if err != nil {
		return nil, errors.Wrap(err, "build injector")
	}

	var app *App

	// we return nil below , so the error will only ever be a construction error
	errorWhenConstructingApp := injector.Invoke(func(a *App) {
		app = a
	})
	if errorWhenConstructingApp != nil {
		return nil, errors.Wrap(errorWhenConstructingApp, "resolve dependencies")
	}

	debug := log.With(level.Debug(app.Logger), "component", "injector", "phase", "instance.get")
	debug.Log("event", "injector.invoke.resolve")
	return app, nil
}
