/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Source interfaces a tag-export/XLSX parser would implement, plus
an in-memory SliceSource used by tests. Every Read method checks its context
first and returns ctx.Err() if the context is already done.
*/

package ingest

import "context"

// PLCTagSource yields the full PLCTagRecord stream for one run.
type PLCTagSource interface {
	ReadPLCTags(ctx context.Context) ([]PLCTagRecord, error)
}

// IODeviceSource yields the full IODeviceRecord stream for one run.
type IODeviceSource interface {
	ReadIODevices(ctx context.Context) ([]IODeviceRecord, error)
}

// RackLayoutSource yields the optional rack-layout stream. A nil result with
// a nil error means the worksheet was not supplied; callers must not treat
// that as an error.
type RackLayoutSource interface {
	ReadRackLayout(ctx context.Context) ([]RackLayoutRecord, error)
}

// SliceSource is a PLCTagSource, IODeviceSource, and RackLayoutSource backed
// by in-memory slices. Its only error is ctx.Err() for a context that is
// already done; it exists for tests, not for parsing real tag-export or XLSX
// files (the CLI reads fixture files through FixtureSource).
type SliceSource struct {
	Tags    []PLCTagRecord
	Devices []IODeviceRecord
	Layout  []RackLayoutRecord
}

func (s SliceSource) ReadPLCTags(ctx context.Context) ([]PLCTagRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Tags, nil
}

func (s SliceSource) ReadIODevices(ctx context.Context) ([]IODeviceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Devices, nil
}

func (s SliceSource) ReadRackLayout(ctx context.Context) ([]RackLayoutRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Layout, nil
}
