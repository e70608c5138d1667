/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run.go
Description: Run command implementation for io-crosscheck. Reads the
PLC-tag, IO-list, and optional rack-layout fixture files, runs the
reconciliation engine, and reports counts, conflicts, and diagnostics either
as human-readable text or as JSON.
*/

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/engine"
	"github.com/mesa-automation/io-crosscheck/pkg/ingest"
	"github.com/mesa-automation/io-crosscheck/pkg/report"
)

// runOutput is the top-level shape printed for --json.
type runOutput struct {
	Summary     report.Summary       `json:"summary"`
	Conflicts   []domain.MatchResult `json:"conflicts"`
	Diagnostics []string             `json:"diagnostics"`
}

// RunReconciliation executes one engine run against the fixture files named
// by --plc-tags, --io-list, and --rack-layout.
func RunReconciliation(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	plcTagsPath := viper.GetString("plc_tags")
	ioListPath := viper.GetString("io_list")
	rackLayoutPath := viper.GetString("rack_layout")
	if plcTagsPath == "" || ioListPath == "" {
		return fmt.Errorf("--plc-tags and --io-list are required")
	}

	src := ingest.FixtureSource{
		PLCTagPath:     plcTagsPath,
		IODevicePath:   ioListPath,
		RackLayoutPath: rackLayoutPath,
	}

	result, err := engine.Run(context.Background(), src, src, src, cfg, engine.Options{
		Workers: viper.GetInt("workers"),
	})
	if err != nil {
		return fmt.Errorf("engine run failed: %w", err)
	}

	runID := uuid.New().String()
	for _, m := range result.Matches {
		logger.LogMatch(sourceRowOf(m), string(m.Classification), m.WinningStrategy, string(m.Confidence), nil)
		if m.Classification == domain.ClassConflict && m.ConflictDetail != nil {
			logger.LogConflict(m.ConflictDetail.Address, m.ConflictDetail.NameA, m.ConflictDetail.NameB, nil)
		}
	}
	for _, d := range result.Diagnostics {
		sourceLine, sourceRow := 0, 0
		var shapeErr *domain.InputShapeError
		if errors.As(d.Err, &shapeErr) {
			sourceLine, sourceRow = shapeErr.SourceLine, shapeErr.SourceRow
		}
		logger.LogDiagnostic(sourceLine, sourceRow, d.Note, nil)
	}

	summary := report.Summarize(runID, result.Matches)
	byClass := make(map[string]int, len(summary.CountByClass))
	for class, count := range summary.CountByClass {
		byClass[string(class)] = count
	}
	logger.LogRunSummary(runID, summary.TotalResults, byClass, nil)

	if viper.GetBool("json") {
		diagnostics := make([]string, 0, len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			diagnostics = append(diagnostics, d.Note)
		}
		out := runOutput{
			Summary:     summary,
			Conflicts:   report.Conflicts(result.Matches),
			Diagnostics: diagnostics,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printSummary(summary, report.Conflicts(result.Matches), result.Diagnostics)
	return nil
}

func sourceRowOf(m domain.MatchResult) int {
	if m.DeviceRef == nil {
		return 0
	}
	return m.DeviceRef.SourceRow
}

func printSummary(summary report.Summary, conflicts []domain.MatchResult, diagnostics []domain.Diagnostic) {
	fmt.Printf("Run %s: %d results\n", summary.RunID, summary.TotalResults)
	for class, count := range summary.CountByClass {
		fmt.Printf("  %-14s %d\n", class, count)
	}
	if len(conflicts) > 0 {
		fmt.Printf("\n%d conflict(s):\n", len(conflicts))
		for _, c := range conflicts {
			if c.ConflictDetail != nil {
				fmt.Printf("  %s: %q vs %q\n", c.ConflictDetail.Address, c.ConflictDetail.NameA, c.ConflictDetail.NameB)
			}
		}
	}
	if len(diagnostics) > 0 {
		fmt.Printf("\n%d diagnostic(s):\n", len(diagnostics))
		for _, d := range diagnostics {
			fmt.Printf("  %s\n", d.Note)
		}
	}
}
