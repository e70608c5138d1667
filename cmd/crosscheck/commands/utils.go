/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the io-crosscheck commands. Loads
configuration and stands up the logger the same way cmd/fuzzer's commands
package does, retargeted onto pkg/config and pkg/logging's engine surface.
*/

package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesa-automation/io-crosscheck/pkg/config"
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/logging"
)

// LoadConfig loads the Normalizer/Classifier configuration from the
// --config file (if any), environment variables, and bound flags.
func LoadConfig() (domain.Config, error) {
	return config.Load(viper.GetViper(), viper.GetString("config"))
}

// SetupLogging constructs the run's Logger from the persistent logging
// flags bound onto viper.
func SetupLogging() (*logging.Logger, error) {
	level := logging.LogLevel(viper.GetString("log_level"))
	format := logging.LogFormatText
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	} else if f := viper.GetString("log_format"); f != "" {
		format = logging.LogFormat(f)
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    format != logging.LogFormatJSON,
		Compress:  viper.GetBool("log_compress"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, nil
}
