package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/app-screener/internal/logger"
	"github.com/spigell/app-screener/internal/screening"
)

const maxNameLogLength = 64

type verdictFilter struct {
	questions screening.QuestionList
	logger    *zap.Logger
}

// NewVerdict creates a filter that keeps only applications accepted against questions.
func NewVerdict(questions screening.QuestionList, log *zap.Logger) Filter {
	return &verdictFilter{
		questions: questions,
		logger:    logger.WithFields(log),
	}
}

func (f *verdictFilter) Name() string { return "verdict" }

func (f *verdictFilter) Disable(string) {}

func (f *verdictFilter) IsEnabled() bool { return true }

func (f *verdictFilter) Validate() error {
	if f.questions == nil {
		return fmt.Errorf("question list is required")
	}
	return nil
}

func (f *verdictFilter) Apply(_ context.Context, apps *Applications) (*Applications, Step, error) {
	initial := apps.Len()
	dropped := apps.Drop(VerdictRejected, func(app *Application) bool {
		accepted := screening.Validate(app.Record, f.questions)
		f.logger.Debug("application evaluated",
			zap.String(logger.FieldFile, app.File),
			zap.String(logger.FieldApplicant, logger.TruncateForLog(app.ApplicantName(), maxNameLogLength)),
			zap.Bool("accepted", accepted),
		)
		return !accepted
	})

	for _, app := range apps.Items {
		app.Verdict = VerdictAccepted
	}

	if len(dropped) > 0 {
		f.logger.Info("excluding rejected applications",
			zap.Strings("excluded_applications", dropped),
			zap.Int("applications_left", apps.Len()),
		)
	}

	return apps, Step{Initial: initial, Dropped: len(dropped), Left: apps.Len()}, nil
}

func (f *verdictFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"questions": strconv.Itoa(f.questions.Len())},
	}
}
