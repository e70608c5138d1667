/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config_test.go
Description: Tests for config loading defaults, overrides, and fatal
malformed-file behavior.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enet_prefixes:\n  - CUSTOM_\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CUSTOM_"}, cfg.ENetPrefixList)
	assert.Equal(t, domain.DefaultConfig().SuffixStripList, cfg.SuffixStripList)
}

func TestLoad_MalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	var configErr *domain.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestLoad_EmptyListIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colon_suffixes: []\n"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
}
