/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: records.go
Description: Wire shapes an upstream tag-export/XLSX parser would produce,
mirroring how the fuzzer's pkg/interfaces isolates the boundary between the
engine and its execution targets. Parsing those formats is an external
collaborator; this package only defines what crosses the boundary, an
in-memory Source implementation for tests, and a fixture-file Source for
the CLI.
*/

package ingest

import "github.com/mesa-automation/io-crosscheck/pkg/domain"

// PLCTagRecord is one TAG, COMMENT, ALIAS, or RCOMMENT line from the
// upstream tag-export file, before classification.
type PLCTagRecord struct {
	RecordKind        domain.RecordKind
	Scope             string
	Name              string
	BaseNameCandidate string
	Datatype          string
	Description       string
	Specifier         string
	SourceLine        int
}

// IODeviceRecord is one row of the IO List workbook.
type IODeviceRecord struct {
	Panel, Rack, Group, Slot, Channel string
	PLCAddress, IOTag, DeviceTag      string
	ModuleType, Module                string
	RangeLow, RangeHigh, Units        string
	SourceRow                         int
}

// RackLayoutRecord is one row of the optional rack-layout worksheet, used
// only for supporting annotations, never as a classification input.
type RackLayoutRecord struct {
	Panel, Rack, Slot, Channel, DeviceTag string
}
