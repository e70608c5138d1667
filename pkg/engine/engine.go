/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Top-level orchestration: classify the PLC stream, freeze an
Index, run the rule cascade over every IO List device, then sweep unclaimed
PLC records. Parallelism over independent devices is optional and always
merges results back into input order — mirroring how the fuzzer's Worker
pool fans work out over a WaitGroup and channel while the Corpus stays the
single shared, mutex-guarded resource.
*/

package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/mesa-automation/io-crosscheck/pkg/cascade"
	"github.com/mesa-automation/io-crosscheck/pkg/classify"
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
	"github.com/mesa-automation/io-crosscheck/pkg/ingest"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

// Options controls one Run invocation.
type Options struct {
	// Workers is the size of the bounded pool evaluating IO List devices.
	// 0 or 1 runs the single-threaded baseline.
	Workers int
}

// Result is everything a run produces: the ordered MatchResult sequence and
// the diagnostics collected along the way. Per-record errors never abort a
// run; they surface here instead.
type Result struct {
	Matches     []domain.MatchResult
	Diagnostics []domain.Diagnostic
}

// Run executes the full pipeline once. It returns an error for
// ConfigError-class or InternalInvariantError-class failures and for any
// error a source returns while reading; problems the engine finds in
// individual records are collected into Result.Diagnostics.
func Run(ctx context.Context, tagSrc ingest.PLCTagSource, devSrc ingest.IODeviceSource, layoutSrc ingest.RackLayoutSource, cfg domain.Config, opts Options) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	tagRecords, err := tagSrc.ReadPLCTags(ctx)
	if err != nil {
		return Result{}, err
	}
	devRecords, err := devSrc.ReadIODevices(ctx)
	if err != nil {
		return Result{}, err
	}
	var layoutRecords []ingest.RackLayoutRecord
	if layoutSrc != nil {
		layoutRecords, err = layoutSrc.ReadRackLayout(ctx)
		if err != nil {
			return Result{}, err
		}
	}

	tags, diags := classifyTags(tagRecords, cfg)
	idx := index.Build(tags, cfg)
	layout := cascade.BuildRackLayoutIndex(layoutRecords)
	c := cascade.New(idx, cfg, layout)

	devices, devDiags := buildDevices(devRecords)
	diags = append(diags, devDiags...)

	matches := evaluateAll(c, devices, opts)
	if err := checkInvariants(devices, tags, matches); err != nil {
		return Result{}, err
	}

	matches = append(matches, c.Sweep()...)

	return Result{Matches: matches, Diagnostics: diags}, nil
}

func classifyTags(records []ingest.PLCTagRecord, cfg domain.Config) ([]domain.PLCTag, []domain.Diagnostic) {
	tags := make([]domain.PLCTag, 0, len(records))
	var diags []domain.Diagnostic

	for _, rec := range records {
		if rec.RecordKind == domain.RecordCOMMENT && rec.Specifier == "" {
			diags = append(diags, domain.Diagnostic{
				Err: &domain.InputShapeError{
					SourceLine: rec.SourceLine,
					Reason:     "COMMENT record has no specifier",
				},
				Note: "record skipped",
			})
			continue
		}

		tag := domain.PLCTag{
			ID:          domain.PLCTagID(len(tags)),
			RecordKind:  rec.RecordKind,
			Scope:       rec.Scope,
			Name:        rec.Name,
			BaseName:    rec.BaseNameCandidate,
			Datatype:    rec.Datatype,
			Description: rec.Description,
			Specifier:   rec.Specifier,
			SourceLine:  rec.SourceLine,
		}
		note := classify.ClassifyTag(&tag, cfg)
		if note != "" {
			diags = append(diags, domain.Diagnostic{
				Err:  &domain.InputShapeError{SourceLine: rec.SourceLine, Reason: note},
				Note: "classified as Program with an unrecognized datatype",
			})
		}
		tags = append(tags, tag)
	}
	return tags, diags
}

func buildDevices(records []ingest.IODeviceRecord) ([]domain.IODevice, []domain.Diagnostic) {
	devices := make([]domain.IODevice, 0, len(records))
	var diags []domain.Diagnostic

	for _, rec := range records {
		dev := domain.IODevice{
			Panel:      rec.Panel,
			Rack:       rec.Rack,
			Group:      rec.Group,
			Slot:       rec.Slot,
			Channel:    rec.Channel,
			PLCAddress: rec.PLCAddress,
			IOTag:      rec.IOTag,
			DeviceTag:  rec.DeviceTag,
			ModuleType: rec.ModuleType,
			Module:     rec.Module,
			RangeLow:   rec.RangeLow,
			RangeHigh:  rec.RangeHigh,
			Units:      rec.Units,
			SourceRow:  rec.SourceRow,
		}
		dev.AddressFormat = detectFormat(dev.PLCAddress)
		dev.IsSpare = classify.IsSpare(dev)
		devices = append(devices, dev)
	}
	return devices, diags
}

func evaluateAll(c *cascade.Cascade, devices []domain.IODevice, opts Options) []domain.MatchResult {
	results := make([]domain.MatchResult, len(devices))

	workers := opts.Workers
	if workers <= 1 {
		for i, dev := range devices {
			results[i] = c.Evaluate(dev)
		}
		return results
	}
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.Evaluate(devices[i])
			}
		}()
	}
	for i := range devices {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func checkInvariants(devices []domain.IODevice, tags []domain.PLCTag, matches []domain.MatchResult) error {
	if len(matches) != len(devices) {
		return &domain.InternalInvariantError{
			Invariant: "one MatchResult per non-swept IODevice",
			Detail:    fmt.Sprintf("got %d results for %d devices", len(matches), len(devices)),
		}
	}
	for i, m := range matches {
		if m.DeviceRef == nil {
			return &domain.InternalInvariantError{
				Invariant: "every pre-sweep MatchResult references an IODevice",
				Detail:    fmt.Sprintf("result %d has a nil DeviceRef", i),
			}
		}
		if m.Classification == domain.ClassBoth && len(m.PLCRefs) == 0 {
			return &domain.InternalInvariantError{
				Invariant: "Both requires at least one referenced PLCTag",
				Detail:    fmt.Sprintf("device at source row %d", m.DeviceRef.SourceRow),
			}
		}
		if m.Classification == domain.ClassBothRackOnly && m.WinningStrategy == 1 {
			return &domain.InternalInvariantError{
				Invariant: "BothRackOnly never coexists with Strategy 1 success",
				Detail:    fmt.Sprintf("device at source row %d", m.DeviceRef.SourceRow),
			}
		}
	}
	return nil
}

func detectFormat(addr string) domain.AddressFormat {
	if addr == "" {
		return domain.AddressUnknown
	}
	return normalize.DetectAddressFormat(addr)
}
