/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: summary.go
Description: Downstream aggregation shapes assembled from an engine run's
MatchResult sequence — never rendered to a file format here; that remains
an external collaborator. Exposed as plain Go structs with JSON tags for
the CLI's --json diagnostics path.
*/

package report

import "github.com/mesa-automation/io-crosscheck/pkg/domain"

// Summary is the counts-per-classification and coverage aggregation
// produced as a downstream output of a completed run.
type Summary struct {
	RunID           string                         `json:"run_id"`
	CountByClass    map[domain.Classification]int  `json:"count_by_classification"`
	CoverageByPanel map[string]PanelCoverage        `json:"coverage_by_panel"`
	CoverageByRack  map[string]RackCoverage         `json:"coverage_by_rack"`
	TotalResults    int                             `json:"total_results"`
}

// PanelCoverage counts how many devices on a panel landed in each
// classification.
type PanelCoverage struct {
	Total        int `json:"total"`
	Both         int `json:"both"`
	BothRackOnly int `json:"both_rack_only"`
	IOListOnly   int `json:"io_list_only"`
	Conflict     int `json:"conflict"`
	Spare        int `json:"spare"`
}

// RackCoverage counts how many results tied to a rack landed in each
// classification. Rack attribution comes from DeviceRef.Rack, so it only
// ever covers Both/BothRackOnly/IOListOnly/Conflict/Spare results — a
// genuine PLCOnly result has no DeviceRef and is never attributed to a
// rack here, so PLCOnly is always 0. It stays defined for the JSON shape's
// benefit, not because this aggregation can populate it.
type RackCoverage struct {
	Total        int `json:"total"`
	Both         int `json:"both"`
	BothRackOnly int `json:"both_rack_only"`
	IOListOnly   int `json:"io_list_only"`
	PLCOnly      int `json:"plc_only"`
	Conflict     int `json:"conflict"`
	Spare        int `json:"spare"`
}

// Summarize builds a Summary from a completed MatchResult sequence.
func Summarize(runID string, results []domain.MatchResult) Summary {
	s := Summary{
		RunID:           runID,
		CountByClass:    make(map[domain.Classification]int),
		CoverageByPanel: make(map[string]PanelCoverage),
		CoverageByRack:  make(map[string]RackCoverage),
		TotalResults:    len(results),
	}

	for _, r := range results {
		s.CountByClass[r.Classification]++

		if r.DeviceRef != nil && r.DeviceRef.Panel != "" {
			pc := s.CoverageByPanel[r.DeviceRef.Panel]
			pc.Total++
			addPanelClass(&pc, r.Classification)
			s.CoverageByPanel[r.DeviceRef.Panel] = pc
		}

		rack := rackOf(r)
		if rack != "" {
			rc := s.CoverageByRack[rack]
			rc.Total++
			addRackClass(&rc, r.Classification)
			s.CoverageByRack[rack] = rc
		}
	}
	return s
}

func rackOf(r domain.MatchResult) string {
	if r.DeviceRef != nil {
		return r.DeviceRef.Rack
	}
	return ""
}

func addPanelClass(pc *PanelCoverage, c domain.Classification) {
	switch c {
	case domain.ClassBoth:
		pc.Both++
	case domain.ClassBothRackOnly:
		pc.BothRackOnly++
	case domain.ClassIOListOnly:
		pc.IOListOnly++
	case domain.ClassConflict:
		pc.Conflict++
	case domain.ClassSpare:
		pc.Spare++
	}
}

func addRackClass(rc *RackCoverage, c domain.Classification) {
	switch c {
	case domain.ClassBoth:
		rc.Both++
	case domain.ClassBothRackOnly:
		rc.BothRackOnly++
	case domain.ClassIOListOnly:
		rc.IOListOnly++
	case domain.ClassPLCOnly:
		rc.PLCOnly++
	case domain.ClassConflict:
		rc.Conflict++
	case domain.ClassSpare:
		rc.Spare++
	}
}
