/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: normalize.go
Description: Pure normalization functions for tag names and PLC addresses.
No I/O, no shared state — every function is a deterministic transform of its
input plus an immutable domain.Config, mirroring how the fuzzer's
pkg/normalize-equivalent strategy code stays side-effect free so mutation
outcomes are reproducible from data alone.
*/

package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
)

var (
	clxPattern  = regexp.MustCompile(`(?i)^Rack(\d+):([IO])\.Data\[(\d+)\]\.(\d+)$`)
	plc5Pattern = regexp.MustCompile(`(?i)^Rack(\d+)_Group(\d+)_Slot(\d+)_IO\.(READ|WRITE)\[(\d+)\]$`)
)

// StripColonSuffix removes a single trailing colon-suffix from the
// configured set (":I", ":O", ":C", ":S", ":I1", ":O1" by default). Longest
// match wins on ties. Matching is case-insensitive; the returned string
// preserves the original case of the retained prefix.
func StripColonSuffix(raw string, cfg domain.Config) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)

	best := -1
	bestLen := 0
	for i, suffix := range cfg.ColonSuffixList {
		sl := strings.ToLower(suffix)
		if strings.HasSuffix(lower, sl) && len(sl) > bestLen {
			best = i
			bestLen = len(sl)
		}
	}
	if best == -1 {
		return trimmed
	}
	return trimmed[:len(trimmed)-bestLen]
}

// stripIOSuffix removes at most one trailing IO-type suffix from the
// configured set. Matching is case-insensitive; longest match wins on ties.
func stripIOSuffix(s string, cfg domain.Config) string {
	lower := strings.ToLower(s)

	bestLen := 0
	for _, suffix := range cfg.SuffixStripList {
		sl := strings.ToLower(suffix)
		if strings.HasSuffix(lower, sl) && len(sl) > bestLen {
			bestLen = len(sl)
		}
	}
	if bestLen == 0 {
		return s
	}
	return s[:len(s)-bestLen]
}

// CanonicalizeTagName runs the full normalization pipeline: trim, strip
// colon-suffix, strip at most one IO-type suffix, upper-case. The result is
// the canonical key used for tag-name comparisons throughout the cascade.
func CanonicalizeTagName(raw string, cfg domain.Config) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	noColon := StripColonSuffix(trimmed, cfg)
	noSuffix := stripIOSuffix(noColon, cfg)
	return strings.ToUpper(noSuffix)
}

// ExtractENetPrefix returns the text after the underscore when baseName
// begins (case-insensitively) with a configured ENet prefix, or "" with
// ok=false otherwise. baseName is expected to already have its colon-suffix
// stripped.
func ExtractENetPrefix(baseName string, cfg domain.Config) (string, bool) {
	if baseName == "" {
		return "", false
	}
	lower := strings.ToLower(baseName)
	for _, prefix := range cfg.ENetPrefixList {
		pl := strings.ToLower(prefix)
		if strings.HasPrefix(lower, pl) {
			return baseName[len(prefix):], true
		}
	}
	return "", false
}

// AddressKey is the parsed, canonical form of a PLC address.
type AddressKey struct {
	Format AddressFormatDetail
	Key    string // canonical rendering, e.g. "RACK11:I.DATA[3].13"
	Parent string // rack-parent key for CLX addresses, e.g. "RACK11:I"; empty for PLC5
}

// AddressFormatDetail is an alias of domain.AddressFormat.
type AddressFormatDetail = domain.AddressFormat

// DetectAddressFormat classifies a raw address string without fully parsing
// it. Unparseable addresses return domain.AddressUnknown.
func DetectAddressFormat(raw string) domain.AddressFormat {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return domain.AddressUnknown
	}
	if clxPattern.MatchString(addr) {
		return domain.AddressCLX
	}
	if plc5Pattern.MatchString(addr) {
		return domain.AddressPLC5
	}
	return domain.AddressUnknown
}

// CanonicalizeAddress parses a raw PLC address and renders its canonical
// key. ok is false for unparseable addresses — the engine must not guess.
func CanonicalizeAddress(raw string) (AddressKey, bool) {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return AddressKey{}, false
	}

	if m := clxPattern.FindStringSubmatch(addr); m != nil {
		n, nErr := strconv.Atoi(m[1])
		w, wErr := strconv.Atoi(m[3])
		b, bErr := strconv.Atoi(m[4])
		if nErr != nil || wErr != nil || bErr != nil {
			return AddressKey{}, false
		}
		direction := strings.ToUpper(m[2])
		key := fmt.Sprintf("RACK%d:%s.DATA[%d].%d", n, direction, w, b)
		parent := fmt.Sprintf("RACK%d:%s", n, direction)
		return AddressKey{Format: domain.AddressCLX, Key: key, Parent: parent}, true
	}

	if m := plc5Pattern.FindStringSubmatch(addr); m != nil {
		n, nErr := strconv.Atoi(m[1])
		g, gErr := strconv.Atoi(m[2])
		s, sErr := strconv.Atoi(m[3])
		c, cErr := strconv.Atoi(m[5])
		if nErr != nil || gErr != nil || sErr != nil || cErr != nil {
			return AddressKey{}, false
		}
		rw := strings.ToUpper(m[4])
		key := fmt.Sprintf("RACK%d_GROUP%d_SLOT%d_IO.%s[%d]", n, g, s, rw, c)
		return AddressKey{Format: domain.AddressPLC5, Key: key}, true
	}

	return AddressKey{}, false
}

// RackIONameKey renders the canonical key for a Rack-IO TAG name, e.g.
// "Rack11:I" -> "RACK11:I". ok is false if name does not match that shape.
func RackIONameKey(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	re := regexp.MustCompile(`(?i)^Rack(\d+):([IO])$`)
	m := re.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("RACK%d:%s", n, strings.ToUpper(m[2])), true
}
