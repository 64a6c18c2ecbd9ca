package filtering

import (
	"context"

	"go.uber.org/zap"
)

type documentsFilter struct {
	logger *zap.Logger
}

// NewDocuments creates a filter that removes applications whose document could not be parsed.
func NewDocuments(logger *zap.Logger) Filter {
	return &documentsFilter{logger: logger}
}

func (f *documentsFilter) Name() string { return "documents" }

func (f *documentsFilter) Disable(string) {}

func (f *documentsFilter) IsEnabled() bool { return true }

func (f *documentsFilter) Validate() error { return nil }

func (f *documentsFilter) Apply(_ context.Context, apps *Applications) (*Applications, Step, error) {
	initial := apps.Len()
	dropped := apps.Drop(VerdictMalformed, func(app *Application) bool {
		return app.Err != nil || app.Record == nil
	})

	if f.logger != nil && len(dropped) > 0 {
		f.logger.Info("excluding malformed application documents",
			zap.Strings("excluded_applications", dropped),
			zap.Int("applications_left", apps.Len()),
		)
	}

	return apps, Step{Initial: initial, Dropped: len(dropped), Left: apps.Len()}, nil
}
