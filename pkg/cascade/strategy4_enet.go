/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy4_enet.go
Description: Strategy 4 — EtherNet/IP Module Extraction.
*/

package cascade

import (
	"strings"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
)

// ENetModuleExtraction is Strategy 4. It applies regardless of address
// format: EtherNet/IP devices are frequently listed with no PLC address at
// all, only a device-tag or io-tag naming the drive/overload.
type ENetModuleExtraction struct{}

func (ENetModuleExtraction) ID() int      { return 4 }
func (ENetModuleExtraction) Name() string { return "EtherNet/IP Module Extraction" }

func (ENetModuleExtraction) AppliesTo(dev domain.IODevice) bool {
	return dev.DeviceTag != "" || dev.IOTag != ""
}

func (ENetModuleExtraction) TryMatch(dev domain.IODevice, idx *index.Index, cfg domain.Config) Outcome {
	candidate := dev.DeviceTag
	if candidate == "" {
		candidate = dev.IOTag
	}
	candidate = strings.ToUpper(strings.TrimSpace(candidate))
	if candidate == "" {
		return failed("no device-tag or io-tag to match against ENet-Device tags")
	}

	hits := idx.LookupENetDevice(candidate)
	if len(hits) == 0 {
		return failed("no ENet-Device tag for " + candidate)
	}

	return Outcome{
		Fired:          true,
		Classification: domain.ClassBoth,
		Confidence:     domain.ConfidenceExact,
		PLCRefs:        hits,
		ClaimRefs:      hits,
		KeyConsulted:   candidate,
		Note:           "device/io tag matches an ENet-Device tag's extracted prefix",
	}
}
