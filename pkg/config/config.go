/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Loads the Normalizer/Classifier configuration surface via
spf13/viper from an optional file, environment overrides, and bound cobra
flags, mirroring how cmd/fuzzer binds every flag onto viper before reading
values back out. Load is called once at startup; a bad configuration is
fatal before any record is processed.
*/

package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
)

const (
	keySuffixStripList  = "suffix_strip_list"
	keyColonSuffixes    = "colon_suffixes"
	keyENetPrefixes     = "enet_prefixes"
	keyProgramDatatypes = "program_datatypes"
)

// Load reads configuration from an optional file at path (empty skips file
// loading), then environment variables prefixed IOCROSSCHECK_, then whatever
// cobra flags the caller has already bound onto v. Any list left unset by
// all three sources falls back to domain.DefaultConfig's values.
func Load(v *viper.Viper, path string) (domain.Config, error) {
	def := domain.DefaultConfig()
	v.SetDefault(keySuffixStripList, def.SuffixStripList)
	v.SetDefault(keyColonSuffixes, def.ColonSuffixList)
	v.SetDefault(keyENetPrefixes, def.ENetPrefixList)
	v.SetDefault(keyProgramDatatypes, def.ProgramDatatypes)

	v.SetEnvPrefix("IOCROSSCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, &domain.ConfigError{Field: "config_file", Reason: err.Error()}
		}
	}

	cfg := domain.Config{
		SuffixStripList:  v.GetStringSlice(keySuffixStripList),
		ColonSuffixList:  v.GetStringSlice(keyColonSuffixes),
		ENetPrefixList:   v.GetStringSlice(keyENetPrefixes),
		ProgramDatatypes: v.GetStringSlice(keyProgramDatatypes),
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
