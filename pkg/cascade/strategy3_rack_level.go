/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy3_rack_level.go
Description: Strategy 3 — Rack-Level TAG Existence. Never promoted to Both;
this is a distinct, weaker classification. Its PLCRefs are reported for
audit but deliberately excluded from ClaimRefs — one rack tag may cover
many devices, so it is claimed later at sweep time instead of here.
*/

package cascade

import (
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

// RackLevelTagExistence is Strategy 3. It only ever runs after Strategy 1
// has already failed for this device (cascade ordering guarantees that: if
// Strategy 1 had fired, the cascade would have stopped before reaching
// Strategy 3), so AppliesTo only needs to check the address format.
type RackLevelTagExistence struct{}

func (RackLevelTagExistence) ID() int      { return 3 }
func (RackLevelTagExistence) Name() string { return "Rack-Level TAG Existence" }

func (RackLevelTagExistence) AppliesTo(dev domain.IODevice) bool {
	return dev.AddressFormat == domain.AddressCLX
}

func (RackLevelTagExistence) TryMatch(dev domain.IODevice, idx *index.Index, cfg domain.Config) Outcome {
	key, ok := normalize.CanonicalizeAddress(dev.PLCAddress)
	if !ok {
		return failed("plc-address did not canonicalize as CLX")
	}
	if !idx.HasRackTag(key.Parent) {
		return failed("no Rack-IO TAG for parent " + key.Parent)
	}

	return Outcome{
		Fired:          true,
		Classification: domain.ClassBothRackOnly,
		Confidence:     domain.ConfidencePartial,
		PLCRefs:        idx.LookupRackTag(key.Parent),
		KeyConsulted:   key.Parent,
		Note:           "Rack-IO TAG " + key.Parent + " exists; no bit-level COMMENT match",
		// ClaimRefs intentionally empty: Cascade records the rack key and
		// Sweep claims the rack parent's TAGs once every device is evaluated.
	}
}
