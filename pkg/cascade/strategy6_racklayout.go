/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy6_racklayout.go
Description: Rack Layout cross-reference: a supporting annotation only,
never a classification input. It does not implement Strategy, since
AppliesTo/TryMatch would imply it can win a device a slot in the cascade;
instead the cascade orchestrator calls Annotate after a MatchResult is
already decided, purely to append audit context when the rack-layout
worksheet disagrees with the winning device tag.
*/

package cascade

import (
	"strings"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/ingest"
)

// RackLayoutIndex is a small lookup keyed by (Panel, Rack, Slot, Channel),
// built once from the optional rack-layout worksheet.
type RackLayoutIndex struct {
	byPosition map[rackPosition]string // -> DeviceTag
}

type rackPosition struct {
	Panel, Rack, Slot, Channel string
}

// BuildRackLayoutIndex returns nil for an empty or absent worksheet; callers
// must treat a nil *RackLayoutIndex as "no annotation available".
func BuildRackLayoutIndex(records []ingest.RackLayoutRecord) *RackLayoutIndex {
	if len(records) == 0 {
		return nil
	}
	idx := &RackLayoutIndex{byPosition: make(map[rackPosition]string, len(records))}
	for _, r := range records {
		pos := rackPosition{
			Panel:   upperTrim(r.Panel),
			Rack:    upperTrim(r.Rack),
			Slot:    upperTrim(r.Slot),
			Channel: upperTrim(r.Channel),
		}
		idx.byPosition[pos] = strings.TrimSpace(r.DeviceTag)
	}
	return idx
}

func upperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Annotate appends a Strategy 6 audit entry when the rack-layout worksheet
// names a different device at this device's position. It never
// changes Classification, Confidence, or WinningStrategy.
func (idx *RackLayoutIndex) Annotate(dev domain.IODevice, result *domain.MatchResult) {
	if idx == nil {
		return
	}
	pos := rackPosition{
		Panel:   upperTrim(dev.Panel),
		Rack:    upperTrim(dev.Rack),
		Slot:    upperTrim(dev.Slot),
		Channel: upperTrim(dev.Channel),
	}
	layoutTag, ok := idx.byPosition[pos]
	if !ok {
		return
	}
	layoutNorm := upperTrim(layoutTag)
	deviceNorm := upperTrim(deviceName(dev))
	if layoutNorm == "" || layoutNorm == deviceNorm {
		return
	}

	result.AuditTrail = append(result.AuditTrail, domain.AuditEntry{
		StrategyID:   6,
		StrategyName: "Rack Layout Cross-Reference",
		Outcome:      domain.OutcomeMatched,
		KeyConsulted: pos.Panel + "/" + pos.Rack + "/" + pos.Slot + "/" + pos.Channel,
		Note:         "rack layout names " + layoutTag + " at this position, IO List names " + deviceName(dev),
	})
}
