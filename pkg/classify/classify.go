/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: Classifier for PLC tags and IO List rows. Assigns each PLCTag a
TagCategory and each IODevice a spare/active verdict, following a
first-match-wins priority order. This is the tagged, categorized variant
the cascade consumes so it never re-parses raw records.
*/

package classify

import (
	"regexp"
	"strings"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

var rackIOTagPattern = regexp.MustCompile(`(?i)^Rack\d+:[IO]$`)

// UnknownDatatypeNote is stamped into a diagnostic when a TAG falls through
// to the Program fallback for an unrecognized datatype.
const UnknownDatatypeNote = "unknown datatype"

// ClassifyTag assigns tag.Category in place, walking the priority order
// below step by step. The returned string is a diagnostic note, non-empty
// only for the fallback branch.
func ClassifyTag(tag *domain.PLCTag, cfg domain.Config) string {
	switch {
	case tag.RecordKind == domain.RecordALIAS:
		tag.Category = domain.CategoryAlias
		return ""

	case tag.RecordKind == domain.RecordCOMMENT && isCLXBitAddress(tag.Specifier):
		tag.Category = domain.CategoryBitComment
		return ""

	case tag.RecordKind == domain.RecordTAG && isRackIOName(tag.Name):
		tag.Category = domain.CategoryRackIO
		return ""

	case tag.RecordKind == domain.RecordTAG && hasModuleDatatype(tag.Datatype):
		tag.Category = domain.CategoryIOModule
		return ""

	case tag.RecordKind == domain.RecordTAG && hasENetPrefix(tag.BaseName, cfg):
		tag.Category = domain.CategoryENetDevice
		return ""

	case tag.RecordKind == domain.RecordTAG && isProgramDatatype(tag.Datatype, cfg):
		tag.Category = domain.CategoryProgram
		return ""

	default:
		tag.Category = domain.CategoryProgram
		return UnknownDatatypeNote
	}
}

func isCLXBitAddress(specifier string) bool {
	if specifier == "" {
		return false
	}
	key, ok := normalize.CanonicalizeAddress(specifier)
	return ok && key.Format == domain.AddressCLX
}

func isRackIOName(name string) bool {
	return rackIOTagPattern.MatchString(strings.TrimSpace(name))
}

func hasModuleDatatype(datatype string) bool {
	dt := strings.ToUpper(strings.TrimSpace(datatype))
	return strings.HasPrefix(dt, "AB:") || strings.HasPrefix(dt, "EH:")
}

func hasENetPrefix(baseName string, cfg domain.Config) bool {
	_, ok := normalize.ExtractENetPrefix(baseName, cfg)
	return ok
}

// isProgramDatatype matches a recognized primitive datatype or a named UDT.
// By the time this runs, hasModuleDatatype has already routed AB:/EH:
// module datatypes elsewhere, so any remaining non-empty datatype is
// treated as a UDT reference.
func isProgramDatatype(datatype string, cfg domain.Config) bool {
	dt := strings.ToUpper(strings.TrimSpace(datatype))
	if dt == "" {
		return false
	}
	for _, known := range cfg.ProgramDatatypes {
		if dt == strings.ToUpper(known) {
			return true
		}
	}
	return true
}

// IsSpare reports whether an IO List row is a spare point: io-tag or
// device-tag trimmed-and-upper-cased equals "SPARE", or both are empty
// while the row otherwise carries a valid channel position.
func IsSpare(dev domain.IODevice) bool {
	io := strings.ToUpper(strings.TrimSpace(dev.IOTag))
	device := strings.ToUpper(strings.TrimSpace(dev.DeviceTag))
	if io == "SPARE" || device == "SPARE" {
		return true
	}
	if io == "" && device == "" && strings.TrimSpace(dev.Channel) != "" {
		return true
	}
	return false
}
