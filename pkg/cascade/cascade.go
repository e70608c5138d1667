/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cascade.go
Description: Orchestrates the fixed, priority-ordered strategy array over one
IODevice, mirroring how the fuzzer's CompositeMutator walks an ordered list of
mutators and stops at the first one that fires. First non-failing Outcome
wins; every strategy's disposition is recorded into the audit trail, matched
or otherwise.
*/

package cascade

import (
	"sync"

	"github.com/mesa-automation/io-crosscheck/pkg/classify"
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
)

// Ordered is the fixed priority order Evaluate walks strategy by strategy.
// Strategy 6 (Rack Layout) is not in this list; it never decides a
// classification, so it is invoked separately via RackLayoutIndex.Annotate
// after the winner is known.
var Ordered = []Strategy{
	DirectCLXAddressMatch{},
	PLC5RackAddressMatch{},
	RackLevelTagExistence{},
	ENetModuleExtraction{},
	TagNameNormalizationMatch{},
}

// Cascade evaluates one IODevice against the Index and the ordered strategy
// list, and against the optional rack-layout annotator.
type Cascade struct {
	idx        *index.Index
	cfg        domain.Config
	strategies []Strategy
	layout     *RackLayoutIndex

	// usedRackKeys records every rack-parent key Strategy 3 has matched at
	// least one device against. The PLC-Only sweep consults this to decide
	// whether a Rack-IO TAG is genuinely unmatched or was already spoken
	// for by a BothRackOnly result — the rack tag is claimed at sweep time,
	// not by Strategy 3 itself, since one rack tag can back many devices.
	// Evaluate may run on many devices concurrently (Options.Workers > 1 in
	// pkg/engine), so writes go through rackKeysMu the same way Index guards
	// its own claimed set.
	rackKeysMu   sync.Mutex
	usedRackKeys map[index.RackKey]bool
}

// New builds a Cascade over a frozen Index. layout may be nil.
func New(idx *index.Index, cfg domain.Config, layout *RackLayoutIndex) *Cascade {
	return &Cascade{
		idx:          idx,
		cfg:          cfg,
		strategies:   Ordered,
		layout:       layout,
		usedRackKeys: make(map[index.RackKey]bool),
	}
}

// markRackKeyUsed records a rack-parent key Strategy 3 fired against.
func (c *Cascade) markRackKeyUsed(key index.RackKey) {
	c.rackKeysMu.Lock()
	c.usedRackKeys[key] = true
	c.rackKeysMu.Unlock()
}

// rackKeysUsed returns a snapshot of every rack-parent key Strategy 3 has
// fired against so far, safe to call once evaluation has finished.
func (c *Cascade) rackKeysUsed() []index.RackKey {
	c.rackKeysMu.Lock()
	defer c.rackKeysMu.Unlock()
	keys := make([]index.RackKey, 0, len(c.usedRackKeys))
	for k := range c.usedRackKeys {
		keys = append(keys, k)
	}
	return keys
}

// Evaluate runs the full cascade for one device and returns its MatchResult.
// It claims the winning strategy's ClaimRefs against the Index before
// returning, so a later device (or the PLC-Only sweep) sees the claim.
func (c *Cascade) Evaluate(dev domain.IODevice) domain.MatchResult {
	if classify.IsSpare(dev) {
		return domain.MatchResult{
			Classification:  domain.ClassSpare,
			WinningStrategy: 0,
			Confidence:      domain.ConfidenceNone,
			DeviceRef:       &dev,
			AuditTrail: []domain.AuditEntry{{
				StrategyID:   0,
				StrategyName: "Spare Detection",
				Outcome:      domain.OutcomeMatched,
				Note:         "device row marked spare",
			}},
		}
	}

	result := domain.MatchResult{
		Classification:  domain.ClassIOListOnly,
		WinningStrategy: 0,
		Confidence:      domain.ConfidenceNone,
		DeviceRef:       &dev,
	}

	won := false
	for _, s := range c.strategies {
		if won {
			result.AuditTrail = append(result.AuditTrail, domain.AuditEntry{
				StrategyID:   s.ID(),
				StrategyName: s.Name(),
				Outcome:      domain.OutcomeSkipped,
				Note:         "earlier strategy already matched",
			})
			continue
		}
		if !s.AppliesTo(dev) {
			result.AuditTrail = append(result.AuditTrail, domain.AuditEntry{
				StrategyID:   s.ID(),
				StrategyName: s.Name(),
				Outcome:      domain.OutcomeSkipped,
				Note:         "not applicable to this address format/inputs",
			})
			continue
		}

		outcome := s.TryMatch(dev, c.idx, c.cfg)
		if !outcome.Fired {
			result.AuditTrail = append(result.AuditTrail, domain.AuditEntry{
				StrategyID:   s.ID(),
				StrategyName: s.Name(),
				Outcome:      domain.OutcomeFailed,
				KeyConsulted: outcome.KeyConsulted,
				Note:         outcome.Note,
			})
			continue
		}

		var evidence *domain.PLCTagID
		if len(outcome.PLCRefs) > 0 {
			id := outcome.PLCRefs[0]
			evidence = &id
		}
		result.AuditTrail = append(result.AuditTrail, domain.AuditEntry{
			StrategyID:   s.ID(),
			StrategyName: s.Name(),
			Outcome:      domain.OutcomeMatched,
			KeyConsulted: outcome.KeyConsulted,
			Evidence:     evidence,
			Note:         outcome.Note,
		})

		result.Classification = outcome.Classification
		result.WinningStrategy = s.ID()
		result.Confidence = outcome.Confidence
		result.PLCRefs = outcome.PLCRefs
		result.ConflictDetail = outcome.ConflictDetail
		if len(outcome.ClaimRefs) > 0 {
			c.idx.Claim(outcome.ClaimRefs...)
		}
		if s.ID() == 3 && outcome.KeyConsulted != "" {
			c.markRackKeyUsed(outcome.KeyConsulted)
		}
		won = true
	}

	c.layout.Annotate(dev, &result)
	return result
}
