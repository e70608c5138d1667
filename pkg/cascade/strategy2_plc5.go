/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy2_plc5.go
Description: Strategy 2 — PLC5 Rack Address Match.
*/

package cascade

import (
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

// PLC5RackAddressMatch is Strategy 2.
type PLC5RackAddressMatch struct{}

func (PLC5RackAddressMatch) ID() int      { return 2 }
func (PLC5RackAddressMatch) Name() string { return "PLC5 Rack Address Match" }

func (PLC5RackAddressMatch) AppliesTo(dev domain.IODevice) bool {
	return dev.AddressFormat == domain.AddressPLC5
}

func (PLC5RackAddressMatch) TryMatch(dev domain.IODevice, idx *index.Index, cfg domain.Config) Outcome {
	key, ok := normalize.CanonicalizeAddress(dev.PLCAddress)
	if !ok {
		return failed("plc-address did not canonicalize as PLC5")
	}

	hits := idx.LookupPLC5Tuple(key.Key)
	if len(hits) == 0 {
		return failed("no TAG at " + key.Key)
	}

	return Outcome{
		Fired:          true,
		Classification: domain.ClassBoth,
		Confidence:     domain.ConfidenceExact,
		PLCRefs:        hits,
		ClaimRefs:      hits,
		KeyConsulted:   key.Key,
		Note:           "PLC5 address tuple matches a TAG",
	}
}
