/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the IO Crosscheck engine.
Provides the run and version subcommands, configuration file/environment/flag
layering, and logging setup, adapted from the fuzzer's cmd/fuzzer/main.go.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesa-automation/io-crosscheck/cmd/crosscheck/commands"
)

var (
	configFile string
	logLevel   string
	jsonLogs   bool

	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool

	plcTagsPath    string
	ioListPath     string
	rackLayoutPath string
	jsonOutput     bool
	workers        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "IO Crosscheck - deterministic PLC tag / IO list reconciliation engine",
		Long: `IO Crosscheck reconciles PLC tag exports against IO List worksheets for
industrial control panels, classifying every device and tag as matched,
rack-level-only, list-only, PLC-only, conflicting, or spare through an
ordered, deterministic strategy cascade.`,
		Version: commands.Version,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile a PLC tag export against an IO List",
		Long: `Run classifies every IO List device and PLC tag through the ordered
strategy cascade and reports counts by classification, any conflicts found,
and per-record diagnostics.`,
		RunE: commands.RunReconciliation,
	}
	runCmd.Flags().StringVar(&plcTagsPath, "plc-tags", "", "Path to the PLC tag export fixture file (required)")
	runCmd.Flags().StringVar(&ioListPath, "io-list", "", "Path to the IO List fixture file (required)")
	runCmd.Flags().StringVar(&rackLayoutPath, "rack-layout", "", "Path to the optional rack-layout fixture file")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of text")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Number of parallel workers evaluating devices (1 = serial)")
	runCmd.MarkFlagRequired("plc-tags")
	runCmd.MarkFlagRequired("io-list")

	viper.BindPFlag("plc_tags", runCmd.Flags().Lookup("plc-tags"))
	viper.BindPFlag("io_list", runCmd.Flags().Lookup("io-list"))
	viper.BindPFlag("rack_layout", runCmd.Flags().Lookup("rack-layout"))
	viper.BindPFlag("json", runCmd.Flags().Lookup("json"))
	viper.BindPFlag("workers", runCmd.Flags().Lookup("workers"))

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		RunE:  commands.PrintVersion,
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
