/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fixture.go
Description: Line-oriented fixture file parsing for the CLI's --plc-tags,
--io-list, and --rack-layout flags. Pipe-delimited, one record per line,
'#'-prefixed lines and blank lines skipped. Stands in for the excluded
tag-export/XLSX parser so the engine can be exercised end-to-end.
*/

package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
)

// FixtureSource reads pipe-delimited fixture files from disk. It implements
// PLCTagSource, IODeviceSource, and RackLayoutSource against three
// independent file paths; RackLayoutPath may be empty.
type FixtureSource struct {
	PLCTagPath     string
	IODevicePath   string
	RackLayoutPath string
}

func (s FixtureSource) ReadPLCTags(ctx context.Context) ([]PLCTagRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := readFixtureLines(s.PLCTagPath)
	if err != nil {
		return nil, err
	}
	records := make([]PLCTagRecord, 0, len(lines))
	for _, line := range lines {
		rec, err := parsePLCTagLine(line.text, line.number)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s FixtureSource) ReadIODevices(ctx context.Context) ([]IODeviceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := readFixtureLines(s.IODevicePath)
	if err != nil {
		return nil, err
	}
	records := make([]IODeviceRecord, 0, len(lines))
	for i, line := range lines {
		rec, err := parseIODeviceLine(line.text)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.IODevicePath, line.number, err)
		}
		rec.SourceRow = i + 1
		records = append(records, rec)
	}
	return records, nil
}

func (s FixtureSource) ReadRackLayout(ctx context.Context) ([]RackLayoutRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.RackLayoutPath == "" {
		return nil, nil
	}
	lines, err := readFixtureLines(s.RackLayoutPath)
	if err != nil {
		return nil, err
	}
	records := make([]RackLayoutRecord, 0, len(lines))
	for _, line := range lines {
		rec, err := parseRackLayoutLine(line.text)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.RackLayoutPath, line.number, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

type fixtureLine struct {
	text   string
	number int
}

func readFixtureLines(path string) ([]fixtureLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file %s: %w", path, err)
	}
	defer f.Close()

	var lines []fixtureLine
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, fixtureLine{text: text, number: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}
	return lines, nil
}

// parsePLCTagLine parses KIND|Scope|Name|BaseNameCandidate|Datatype|Description|Specifier
func parsePLCTagLine(text string, lineNo int) (PLCTagRecord, error) {
	fields := strings.Split(text, "|")
	if len(fields) != 7 {
		return PLCTagRecord{}, fmt.Errorf("line %d: expected 7 pipe-delimited fields, got %d", lineNo, len(fields))
	}
	kind := domain.RecordKind(strings.ToUpper(strings.TrimSpace(fields[0])))
	return PLCTagRecord{
		RecordKind:        kind,
		Scope:             fields[1],
		Name:              fields[2],
		BaseNameCandidate: fields[3],
		Datatype:          fields[4],
		Description:       fields[5],
		Specifier:         fields[6],
		SourceLine:        lineNo,
	}, nil
}

// parseIODeviceLine parses
// Panel|Rack|Group|Slot|Channel|PLCAddress|IOTag|DeviceTag|ModuleType|Module|RangeLow|RangeHigh|Units
func parseIODeviceLine(text string) (IODeviceRecord, error) {
	fields := strings.Split(text, "|")
	if len(fields) != 13 {
		return IODeviceRecord{}, fmt.Errorf("expected 13 pipe-delimited fields, got %d", len(fields))
	}
	return IODeviceRecord{
		Panel:      fields[0],
		Rack:       fields[1],
		Group:      fields[2],
		Slot:       fields[3],
		Channel:    fields[4],
		PLCAddress: fields[5],
		IOTag:      fields[6],
		DeviceTag:  fields[7],
		ModuleType: fields[8],
		Module:     fields[9],
		RangeLow:   fields[10],
		RangeHigh:  fields[11],
		Units:      fields[12],
	}, nil
}

// parseRackLayoutLine parses Panel|Rack|Slot|Channel|DeviceTag
func parseRackLayoutLine(text string) (RackLayoutRecord, error) {
	fields := strings.Split(text, "|")
	if len(fields) != 5 {
		return RackLayoutRecord{}, fmt.Errorf("expected 5 pipe-delimited fields, got %d", len(fields))
	}
	return RackLayoutRecord{
		Panel:     fields[0],
		Rack:      fields[1],
		Slot:      fields[2],
		Channel:   fields[3],
		DeviceTag: fields[4],
	}, nil
}
