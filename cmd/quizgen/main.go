// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quizgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/quizgen/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the shared pipeline logger, built in the root PersistentPreRunE.
var (
	log      *zap.SugaredLogger
	logClose = func() {}
)

// rootCmd is the base command for the quizgen CLI.
var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "Generate multiple-choice quizzes from spreadsheet data",
	Long: `quizgen turns spreadsheet question/answer data into multiple-choice
quizzes: shuffled options, a stable answer key, and derived metadata such as
decoded figures, normalized dates, and answer-rate ratios.

Each operation is a subcommand: generate (word-pair quizzes), vision (exam
sheets with figures and explanations), convert (tabular format conversion),
and merge (concatenate quiz spreadsheets).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logDir, _ := cmd.Flags().GetString("log-dir")
		l, closer, err := logging.New(logDir)
		if err != nil {
			return err
		}
		log = l
		logClose = closer
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quizgen.yaml or ~/.config/quizgen/config.yaml)")
	rootCmd.PersistentFlags().String("log-dir", "logs", "directory for the debug log file (empty disables it)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quizgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quizgen"))
		}
	}

	viper.SetEnvPrefix("QUIZGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringFlag returns the flag value, falling back to the viper key when the
// flag was not set on the command line.
func stringFlag(cmd *cobra.Command, name, viperKey string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(viperKey) {
		return viper.GetString(viperKey)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// intFlag returns the flag value, falling back to the viper key when the
// flag was not set on the command line.
func intFlag(cmd *cobra.Command, name, viperKey string) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(viperKey) {
		return viper.GetInt(viperKey)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func main() {
	err := rootCmd.Execute()
	logClose()
	if err != nil {
		os.Exit(1)
	}
}
