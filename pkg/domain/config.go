/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Immutable configuration surface for the Normalizer and
Classifier, mirroring the validate-then-freeze pattern the fuzzer's
logging.LoggerConfig uses. Config is read once at startup by pkg/config and
never mutated afterward.
*/

package domain

import "fmt"

// Config holds every configurable table the normalizer and classifier
// consult. Zero-value Config is invalid; use config.Load or DefaultConfig
// to obtain one.
type Config struct {
	SuffixStripList  []string // longest-match-wins IO-type suffixes, e.g. "_Monitor"
	ColonSuffixList  []string // trailing colon-suffixes, e.g. ":I", ":O1"
	ENetPrefixList   []string // ENet device prefixes, e.g. "E300_"
	ProgramDatatypes []string // datatypes that classify a TAG as Program
}

// DefaultConfig returns the built-in defaults for suffix stripping, colon
// suffixes, ENet prefixes, and recognized program datatypes.
func DefaultConfig() Config {
	return Config{
		SuffixStripList: []string{
			"_FailedToClose", "_FailedToOpen", "_OnTimer", "_OffTimer",
			"_Monitor", "_Failed", "_Pulse", "_Input", "_Out", "_Old",
			"_Pos", "_EV", "_MC", "_AUX", "_ZSO", "_ZSC", "_In",
		},
		ColonSuffixList: []string{":I", ":O", ":C", ":S", ":I1", ":O1"},
		ENetPrefixList:  []string{"E300_", "VFD_", "IPDev_", "IPDEV_"},
		ProgramDatatypes: []string{
			"DINT", "INT", "SINT", "BOOL", "REAL", "TIMER", "COUNTER", "STRING",
		},
	}
}

// Validate reports a ConfigError-class problem: any empty list or any empty
// entry within a list. Invalid configuration is fatal before any record is
// processed.
func (c Config) Validate() error {
	lists := map[string][]string{
		"suffix_strip_list":  c.SuffixStripList,
		"colon_suffixes":     c.ColonSuffixList,
		"enet_prefixes":      c.ENetPrefixList,
		"program_datatypes":  c.ProgramDatatypes,
	}
	for name, list := range lists {
		if len(list) == 0 {
			return &ConfigError{Field: name, Reason: "must not be empty"}
		}
		for _, entry := range list {
			if entry == "" {
				return &ConfigError{Field: name, Reason: "contains an empty entry"}
			}
		}
	}
	return nil
}

// ConfigError is fatal at startup.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}
