package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/app-screener/internal/documents"
	"github.com/spigell/app-screener/internal/filtering"
	"github.com/spigell/app-screener/internal/logger"
	"github.com/spigell/app-screener/internal/screening"
)

const (
	PromptShowAccepted  = "Show accepted applications"
	PromptShowRejected  = "Show rejected and malformed applications"
	PromptDescribe      = "Describe filters"
	PromptReportToFile  = "Dump report to file"
	PromptExit          = "Exit"
	noApplicationsFound = "Processing complete, no valid applications found"
	applicationsFound   = "Processing complete: list of valid applications:"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next step?",
	Items: []string{PromptShowAccepted, PromptShowRejected, PromptDescribe, PromptReportToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Validate every application in the applications directory",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("question-list-file", "q", "", "file with the questions and their acceptable answers")
	runCmd.Flags().StringP("applications-dir", "a", "", "directory with the application documents")
	runCmd.Flags().StringP("exclude-file", "e", "", "file with application file names to skip. Default is unset.")
	runCmd.Flags().IntP("workers", "w", defaultWorkers, "number of application documents read in parallel")
	runCmd.Flags().BoolP("interactive", "i", false, "ask what to do with the results after processing")

	viper.BindPFlag("questionListFile", runCmd.Flags().Lookup("question-list-file"))
	viper.BindPFlag("jobApplicationDirectory", runCmd.Flags().Lookup("applications-dir"))
	viper.BindPFlag("excludeFile", runCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("workers", runCmd.Flags().Lookup("workers"))
	viper.BindPFlag("interactive", runCmd.Flags().Lookup("interactive"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	config, err := getConfig()
	if err != nil {
		log.Fatalf("getting a config: %s", err)
	}

	logger, err := newRunLogger(uuid.NewString(), config)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	if err := config.Validate(); err != nil {
		logger.Fatal("invalid config",
			zap.Error(err),
			zap.String("hint", "set the key in the config file, the matching flag or SCREENER_* environment variable"),
		)
	}

	logger.Info("starting the app-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	questions, err := documents.LoadQuestionList(config.QuestionListFile)
	if err != nil {
		if errors.Is(err, documents.ErrNoQuestions) {
			logger.Fatal("loading question list", zap.Error(err),
				zap.String("hint", "make sure at least one question is specified under the questions key"),
			)
		}
		logger.Fatal("loading question list", zap.Error(err))
	}

	fmt.Fprintf(out, "Processing %s using question list file %s\n", config.JobApplicationDirectory, config.QuestionListFile)

	logger.Info("question list loaded", zap.Int("count", questions.Len()))
	if questions.Len() == 0 {
		logger.Warn("question list is empty, every application with an empty answer list will be accepted")
	}

	files, err := documents.ListApplications(config.JobApplicationDirectory)
	if err != nil {
		logger.Fatal("getting application documents", zap.Error(err))
	}

	logger.Info("getting application documents", zap.Int("count", len(files)))

	report, filters, err := screen(ctx, config, questions, files, logger)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	printAccepted(out, report)

	if !viper.GetBool("interactive") {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(out, action, logger, report, filters); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func newRunLogger(runID string, config *Config) (*zap.Logger, error) {
	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, err
	}

	if config == nil {
		return logger.WithRunFields(base, runID, "", ""), nil
	}

	return logger.WithRunFields(base, runID, config.QuestionListFile, config.JobApplicationDirectory), nil
}

// screen loads the application documents and runs them through the filters.
func screen(ctx context.Context, config *Config, questions screening.QuestionList, files []string, logger *zap.Logger) (*filtering.Report, *filtering.Filtering, error) {
	all, err := filtering.Load(ctx, config.JobApplicationDirectory, files, config.Workers, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("loading applications: %w", err)
	}

	filters := prepareFilters(config, questions, logger)

	accepted, err := filters.RunFilters(ctx, all)
	if err != nil {
		return nil, nil, fmt.Errorf("filtering: %w", err)
	}

	logger.Info("screening completed",
		zap.Int("applications", all.Len()),
		zap.Int("accepted", accepted.Len()),
	)

	return filtering.NewReport(all), filters, nil
}

func prepareFilters(config *Config, questions screening.QuestionList, logger *zap.Logger) *filtering.Filtering {
	steps := []filtering.Filter{
		filtering.NewExcludeFile(config.ExcludeFile, logger),
		filtering.NewDocuments(logger),
		filtering.NewVerdict(questions, logger),
	}

	return filtering.New(steps, logger)
}

func printAccepted(w io.Writer, report *filtering.Report) {
	if len(report.Accepted) == 0 {
		fmt.Fprintln(w, noApplicationsFound)
		return
	}

	fmt.Fprintln(w, applicationsFound)
	printEntries(w, report.Accepted)
}

func printEntries(w io.Writer, entries []filtering.ReportEntry) {
	for _, entry := range entries {
		switch {
		case entry.Error != "":
			fmt.Fprintf(w, "%s: %s\n", entry.File, entry.Error)
		case entry.Applicant != "":
			fmt.Fprintf(w, "%s (%s)\n", entry.File, entry.Applicant)
		default:
			fmt.Fprintln(w, entry.File)
		}
	}
}

func handleAction(w io.Writer, action string, logger *zap.Logger, report *filtering.Report, filters *filtering.Filtering) error {
	switch action {
	case PromptShowAccepted:
		printAccepted(w, report)
		return nil
	case PromptShowRejected:
		printEntries(w, report.Rejected)
		printEntries(w, report.Malformed)
		logger.Info("rejected applications",
			zap.Int("rejected", len(report.Rejected)),
			zap.Int("malformed", len(report.Malformed)),
			zap.Int("excluded", len(report.Excluded)),
		)
		return nil
	case PromptDescribe:
		pretty, _ := json.MarshalIndent(filters.Describe(), "", "  ")
		fmt.Fprintln(w, string(pretty))
		return nil
	case PromptReportToFile:
		filename, err := report.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
