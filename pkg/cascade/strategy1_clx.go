/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy1_clx.go
Description: Strategy 1 — Direct CLX Address Match. Also hosts the
Conflict Detector's name-disagreement check, folded into this strategy's
own comparison step rather than run as a separate pass.
*/

package cascade

import (
	"strings"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

// DirectCLXAddressMatch is Strategy 1.
type DirectCLXAddressMatch struct{}

func (DirectCLXAddressMatch) ID() int      { return 1 }
func (DirectCLXAddressMatch) Name() string { return "Direct CLX Address Match" }

func (DirectCLXAddressMatch) AppliesTo(dev domain.IODevice) bool {
	return dev.AddressFormat == domain.AddressCLX
}

func (DirectCLXAddressMatch) TryMatch(dev domain.IODevice, idx *index.Index, cfg domain.Config) Outcome {
	key, ok := normalize.CanonicalizeAddress(dev.PLCAddress)
	if !ok {
		return failed("plc-address did not canonicalize as CLX")
	}

	hits := idx.LookupCLXAddress(key.Key)
	if len(hits) == 0 {
		return failed("no Bit-Comment record at " + key.Key)
	}

	if len(hits) > 1 {
		descriptions := make([]string, 0, len(hits))
		for _, id := range hits {
			descriptions = append(descriptions, strings.ToUpper(strings.TrimSpace(idx.Tag(id).Description)))
		}
		return Outcome{
			Fired:          true,
			Classification: domain.ClassConflict,
			Confidence:     domain.ConfidenceExact,
			PLCRefs:        hits,
			ClaimRefs:      hits,
			ConflictDetail: &domain.ConflictDetail{
				Address: key.Key,
				NameA:   normalize.CanonicalizeTagName(deviceName(dev), cfg),
				NameB:   strings.Join(descriptions, " vs "),
			},
			KeyConsulted: key.Key,
			Note:         "multiple Bit-Comment records share this address",
		}
	}

	tagID := hits[0]
	tag := idx.Tag(tagID)
	descNorm := strings.ToUpper(strings.TrimSpace(tag.Description))
	ioNorm := normalize.CanonicalizeTagName(dev.IOTag, cfg)
	devNorm := normalize.CanonicalizeTagName(dev.DeviceTag, cfg)

	if descNorm == "" {
		return Outcome{
			Fired:          true,
			Classification: domain.ClassBoth,
			Confidence:     domain.ConfidencePartial,
			PLCRefs:        []domain.PLCTagID{tagID},
			ClaimRefs:      []domain.PLCTagID{tagID},
			KeyConsulted:   key.Key,
			Note:           "description-absent",
		}
	}

	if descNorm == ioNorm || descNorm == devNorm {
		return Outcome{
			Fired:          true,
			Classification: domain.ClassBoth,
			Confidence:     domain.ConfidenceExact,
			PLCRefs:        []domain.PLCTagID{tagID},
			ClaimRefs:      []domain.PLCTagID{tagID},
			KeyConsulted:   key.Key,
			Note:           "PLC COMMENT description matches device/io tag",
		}
	}

	return Outcome{
		Fired:          true,
		Classification: domain.ClassConflict,
		Confidence:     domain.ConfidenceExact,
		PLCRefs:        []domain.PLCTagID{tagID},
		ClaimRefs:      []domain.PLCTagID{tagID},
		ConflictDetail: &domain.ConflictDetail{
			Address: key.Key,
			NameA:   deviceOrIONorm(devNorm, ioNorm),
			NameB:   descNorm,
		},
		KeyConsulted: key.Key,
		Note:         "device names disagree at a shared address",
	}
}

func deviceName(dev domain.IODevice) string {
	if dev.DeviceTag != "" {
		return dev.DeviceTag
	}
	return dev.IOTag
}

func deviceOrIONorm(devNorm, ioNorm string) string {
	if devNorm != "" {
		return devNorm
	}
	return ioNorm
}
