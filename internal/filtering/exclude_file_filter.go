package filtering

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

type excludeFileFilter struct {
	path     string
	disabled bool
	reason   string
	logger   *zap.Logger
}

// NewExcludeFile creates a filter that removes applications listed in the exclude file.
// The file holds one application file name per line; blank lines and lines starting with # are ignored.
func NewExcludeFile(path string, logger *zap.Logger) Filter {
	path = strings.TrimSpace(path)
	f := &excludeFileFilter{
		path:   path,
		logger: logger,
	}
	if path == "" {
		f.Disable("exclude file is not configured")
	}
	return f
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate() error {
	if f.path == "" {
		return fmt.Errorf("exclude file path is empty")
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, apps *Applications) (*Applications, Step, error) {
	initial := apps.Len()

	excluded, err := readExcludeFile(f.path)
	if err != nil {
		return apps, Step{}, fmt.Errorf("getting excluded applications from file: %w", err)
	}

	removed := apps.Drop(VerdictExcluded, func(app *Application) bool {
		_, ok := excluded[app.File]
		return ok
	})

	if f.logger != nil && len(removed) > 0 {
		f.logger.Info("excluding applications based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_applications", removed),
			zap.Int("applications_left", apps.Len()),
		)
	}

	return apps, Step{Initial: initial, Dropped: len(removed), Left: apps.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

func readExcludeFile(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	excluded := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		excluded[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return excluded, nil
}
