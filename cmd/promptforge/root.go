package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	profileName string
	workDir     string
	verbose     bool
	quiet       bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "promptforge",
	Short: "Turn unstructured text into structured AI prompts",
	Long: `Promptforge renders structured AI prompts from Markdown templates.
Pick a directive (what to do) and a layer (what level to produce),
pipe in notes, error logs, or code, and promptforge resolves the
matching template and fills in its variables.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&profileName, "config", "default", "profile name (loads .promptforge/config/<name>-app.yml)")
	rootCmd.PersistentFlags().StringVar(&workDir, "workdir", "", "working directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "errors only")
}

// initConfig loads process-level configuration from .env, the
// optional config file, and the environment. Profile configuration is
// loaded explicitly per command, never here.
func initConfig() {
	// A local .env is optional; ignore when absent.
	_ = godotenv.Load()

	viper.SetEnvPrefix("PROMPTFORGE")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".promptforge")
		if err := viper.ReadInConfig(); err == nil {
			slog.Debug("using config file", "file", viper.ConfigFileUsed())
		}
	}
}

// effectiveWorkdir resolves the working directory from the flag, the
// environment, or the current directory, in that order.
func effectiveWorkdir() string {
	if workDir != "" {
		return workDir
	}
	if v := viper.GetString("workdir"); v != "" {
		return v
	}
	return "."
}

func setupLogging() error {
	if verbose && quiet {
		return errVerboseQuiet
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}
