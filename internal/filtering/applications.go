package filtering

import (
	"context"
	"errors"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/app-screener/internal/documents"
	"github.com/spigell/app-screener/internal/screening"
)

// Verdict is the outcome recorded for an application by the filters.
type Verdict string

const (
	VerdictPending   Verdict = "pending"
	VerdictAccepted  Verdict = "accepted"
	VerdictRejected  Verdict = "rejected"
	VerdictMalformed Verdict = "malformed"
	VerdictExcluded  Verdict = "excluded"
)

type Applications struct {
	Items []*Application
}

// Application is one application document found in the applications directory.
type Application struct {
	File    string
	Path    string
	Record  *screening.ApplicationRecord
	Err     error
	Verdict Verdict
}

func (a *Application) ApplicantName() string {
	return a.Record.ApplicantName()
}

func (a *Applications) Len() int {
	return len(a.Items)
}

// Copy returns a new collection sharing the same applications.
func (a *Applications) Copy() *Applications {
	items := make([]*Application, len(a.Items))
	copy(items, a.Items)
	return &Applications{Items: items}
}

func (a *Applications) Files() []string {
	files := make([]string, 0, len(a.Items))
	for _, app := range a.Items {
		files = append(files, app.File)
	}
	return files
}

func (a *Applications) FindByFile(file string) *Application {
	for _, app := range a.Items {
		if app.File == file {
			return app
		}
	}
	return nil
}

// Drop removes every application for which drop returns true, marking it with verdict.
// The order of the remaining applications is preserved and the previous Items slice is left untouched.
// Dropped file names are returned.
func (a *Applications) Drop(verdict Verdict, drop func(*Application) bool) []string {
	var dropped []string
	kept := make([]*Application, 0, len(a.Items))
	for _, app := range a.Items {
		if drop(app) {
			app.Verdict = verdict
			dropped = append(dropped, app.File)
			continue
		}
		kept = append(kept, app)
	}
	a.Items = kept
	return dropped
}

// Load reads and parses the given files from dir using up to workers goroutines.
// Malformed documents are kept with Err set. Any other read failure aborts loading.
// The returned items follow the order of files.
func Load(ctx context.Context, dir string, files []string, workers int, logger *zap.Logger) (*Applications, error) {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	items := make([]*Application, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			app := &Application{
				File:    name,
				Path:    filepath.Join(dir, name),
				Verdict: VerdictPending,
			}

			record, err := documents.ReadApplication(dir, name)
			if err != nil {
				if !errors.Is(err, documents.ErrMalformed) {
					return err
				}
				logger.Debug("malformed application document", zap.String("file", name), zap.Error(err))
				app.Err = err
			}
			app.Record = record

			items[i] = app
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Applications{Items: items}, nil
}
