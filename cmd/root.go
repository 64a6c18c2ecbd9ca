package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "app-screener"

	defaultConfigName = "api_code_assignment_config"
	defaultWorkers    = 1
)

type Config struct {
	QuestionListFile        string `mapstructure:"questionListFile"`
	JobApplicationDirectory string `mapstructure:"jobApplicationDirectory"`
	ExcludeFile             string `mapstructure:"excludeFile"`
	Workers                 int    `mapstructure:"workers"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "app-screener validates job applications against a list of questions and acceptable answers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"questionListFile":        "SCREENER_QUESTION_LIST_FILE",
		"jobApplicationDirectory": "SCREENER_APPLICATIONS_DIR",
		"excludeFile":             "SCREENER_EXCLUDE_FILE",
		"workers":                 "SCREENER_WORKERS",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("workers", defaultWorkers)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+defaultConfigName+".json in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	// Variables from .env never override the ones already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(defaultConfigName)

	// The default config file is optional since everything can be set with flags or env.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks that the settings required for a run are present.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}

	if strings.TrimSpace(c.QuestionListFile) == "" {
		return errors.New("questionListFile is not configured")
	}

	if strings.TrimSpace(c.JobApplicationDirectory) == "" {
		return errors.New("jobApplicationDirectory is not configured")
	}

	if c.Workers < 1 {
		c.Workers = defaultWorkers
	}

	return nil
}
