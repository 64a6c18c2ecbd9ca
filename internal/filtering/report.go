package filtering

import (
	"encoding/json"
	"os"
	"sort"
)

// ReportEntry describes one application in a Report.
type ReportEntry struct {
	File      string `json:"file"`
	Applicant string `json:"applicant,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report groups every loaded application by its verdict. Each group is sorted by file name.
type Report struct {
	Accepted  []ReportEntry `json:"accepted"`
	Rejected  []ReportEntry `json:"rejected"`
	Malformed []ReportEntry `json:"malformed"`
	Excluded  []ReportEntry `json:"excluded"`
	// Pending holds applications no verdict step has evaluated.
	Pending   []ReportEntry `json:"pending"`
}

// NewReport builds a report from all applications that were loaded for a run.
func NewReport(all *Applications) *Report {
	report := &Report{
		Accepted:  []ReportEntry{},
		Rejected:  []ReportEntry{},
		Malformed: []ReportEntry{},
		Excluded:  []ReportEntry{},
		Pending:   []ReportEntry{},
	}

	for _, app := range all.Items {
		entry := ReportEntry{File: app.File, Applicant: app.ApplicantName()}
		if app.Err != nil {
			entry.Error = app.Err.Error()
		}

		switch app.Verdict {
		case VerdictAccepted:
			report.Accepted = append(report.Accepted, entry)
		case VerdictMalformed:
			report.Malformed = append(report.Malformed, entry)
		case VerdictExcluded:
			report.Excluded = append(report.Excluded, entry)
		case VerdictRejected:
			report.Rejected = append(report.Rejected, entry)
		default:
			report.Pending = append(report.Pending, entry)
		}
	}

	for _, group := range [][]ReportEntry{report.Accepted, report.Rejected, report.Malformed, report.Excluded, report.Pending} {
		sort.Slice(group, func(i, j int) bool { return group[i].File < group[j].File })
	}

	return report
}

func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "applications_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
