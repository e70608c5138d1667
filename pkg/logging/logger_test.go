/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests logger creation, formatting, file output, rotation, and
analysis capabilities, adapted from the run/match/conflict/diagnostic event
surface this package now logs.
*/

package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerCreation(t *testing.T) {
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Close()
	defer os.RemoveAll("./logs")

	config := &LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatJSON,
		OutputDir: "./test_logs",
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
		Caller:    true,
		Colors:    false,
		Compress:  false,
	}
	logger, err = NewLogger(config)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Close()
	defer os.RemoveAll("./test_logs")
}

func TestEngineSpecificLogging(t *testing.T) {
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatText,
		OutputDir: "./test_logs",
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: false,
		Caller:    false,
		Colors:    false,
	})
	require.NoError(t, err)
	defer logger.Close()
	defer os.RemoveAll("./test_logs")

	logger.LogMatch(101, "Both", 1, "Exact", nil)
	logger.LogConflict("RACK0:I.DATA[5].6", "FT656B", "HLSTL5C", nil)
	logger.LogDiagnostic(42, 0, "COMMENT record has no specifier", nil)
	logger.LogRunSummary("run-1", 3800, map[string]int{"Both": 3200, "Conflict": 12}, nil)
}

func TestLogFormats(t *testing.T) {
	formats := []LogFormat{LogFormatText, LogFormatJSON, LogFormatCustom}

	for _, format := range formats {
		logger, err := NewLogger(&LoggerConfig{
			Level:     LogLevelInfo,
			Format:    format,
			OutputDir: "./test_logs",
			MaxFiles:  5,
			MaxSize:   1024 * 1024,
			Timestamp: true,
			Caller:    false,
			Colors:    false,
		})
		require.NoError(t, err)
		logger.LogMatch(1, "Both", 1, "Exact", map[string]interface{}{"format": string(format)})
		logger.Close()
	}
	os.RemoveAll("./test_logs")
}

func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: "./logs",
		MaxFiles:  5,
		MaxSize:   1024,
	}
	assert.NoError(t, valid.Validate())

	invalid := &LoggerConfig{Level: LogLevelInfo, Format: LogFormatText}
	assert.Error(t, invalid.Validate())
}

func TestLogManager(t *testing.T) {
	dir := t.TempDir()
	manager := NewLogManager(dir, 3, 1024*1024, false)

	require.NoError(t, manager.RotateLogs())
	require.NoError(t, manager.CleanupOldLogs())

	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalFiles)
}

func TestLogAnalyzer(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/io-crosscheck_test.log"
	content := "INFO device classified source_row=1\nWARN conflicting names at shared address\nWARN record skipped\nINFO run completed\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	analyzer := NewLogAnalyzer(dir)
	analysis, err := analyzer.AnalyzeLogs()
	require.NoError(t, err)

	assert.Equal(t, int64(1), analysis.MatchCount)
	assert.Equal(t, int64(1), analysis.ConflictCount)
	assert.Equal(t, int64(1), analysis.DiagnosticCount)
	assert.Equal(t, int64(1), analysis.RunSummaryCount)
}
