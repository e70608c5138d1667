/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy.go
Description: Shared strategy interface for the rule cascade, mirroring how
the fuzzer's pkg/strategies package gives every mutator a common capability
set (Mutate/Name/Description) so the engine can hold a fixed ordered array
and dispatch through the interface without a type switch. Here the shared
capability set is applies-to / try-match.
*/

package cascade

import (
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
)

// Outcome is what a single strategy decided for one IODevice.
type Outcome struct {
	Fired          bool
	Classification domain.Classification
	Confidence     domain.Confidence
	PLCRefs        []domain.PLCTagID
	ClaimRefs      []domain.PLCTagID // subset of PLCRefs actually claimed; may differ (Strategy 3)
	ConflictDetail *domain.ConflictDetail
	KeyConsulted   string
	Note           string
}

// Strategy is one entry in the priority-ordered rule cascade.
type Strategy interface {
	ID() int
	Name() string
	AppliesTo(dev domain.IODevice) bool
	TryMatch(dev domain.IODevice, idx *index.Index, cfg domain.Config) Outcome
}

// failed builds a non-firing Outcome carrying an explanatory note.
func failed(note string) Outcome {
	return Outcome{Fired: false, Note: note}
}
