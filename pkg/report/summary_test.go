/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: summary_test.go
Description: Aggregation count tests for Summarize and Conflicts.
*/

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
)

func TestSummarize_CountsPerClassification(t *testing.T) {
	results := []domain.MatchResult{
		{Classification: domain.ClassBoth, DeviceRef: &domain.IODevice{Panel: "P1", Rack: "0"}},
		{Classification: domain.ClassBoth, DeviceRef: &domain.IODevice{Panel: "P1", Rack: "0"}},
		{Classification: domain.ClassConflict, DeviceRef: &domain.IODevice{Panel: "P2", Rack: "1"}},
		{Classification: domain.ClassPLCOnly},
	}

	s := Summarize("run-1", results)

	assert.Equal(t, 4, s.TotalResults)
	assert.Equal(t, 2, s.CountByClass[domain.ClassBoth])
	assert.Equal(t, 1, s.CountByClass[domain.ClassConflict])
	assert.Equal(t, 1, s.CountByClass[domain.ClassPLCOnly])
	assert.Equal(t, 2, s.CoverageByPanel["P1"].Total)
	assert.Equal(t, 2, s.CoverageByPanel["P1"].Both)
	assert.Equal(t, 1, s.CoverageByRack["1"].Conflict)
}

func TestConflicts_FiltersToConflictOnly(t *testing.T) {
	results := []domain.MatchResult{
		{Classification: domain.ClassBoth},
		{Classification: domain.ClassConflict},
		{Classification: domain.ClassIOListOnly},
		{Classification: domain.ClassConflict},
	}

	conflicts := Conflicts(results)

	assert.Len(t, conflicts, 2)
	for _, c := range conflicts {
		assert.Equal(t, domain.ClassConflict, c.Classification)
	}
}
