/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sweep.go
Description: PLC-Only sweep, run once after every IO List device has been
evaluated. Emits one MatchResult for every PLC record in a swept category
that is still unclaimed.
*/

package cascade

import (
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
)

// sweptCategories are the tag categories eligible to surface as PLC-Only.
// CategoryProgram and CategoryAlias tags are excluded: they are internal
// PLC-side bookkeeping with no IO List counterpart to ever be missing from.
var sweptCategories = []domain.TagCategory{
	domain.CategoryRackIO,
	domain.CategoryIOModule,
	domain.CategoryENetDevice,
	domain.CategoryBitComment,
}

// Sweep claims every Rack-IO TAG already spoken for by a BothRackOnly
// result, then returns a PLCOnly MatchResult for every remaining unclaimed
// tag in a swept category, in input order.
func (c *Cascade) Sweep() []domain.MatchResult {
	for _, key := range c.rackKeysUsed() {
		c.idx.Claim(c.idx.LookupRackTag(key)...)
	}

	unclaimed := c.idx.Unclaimed(sweptCategories...)
	results := make([]domain.MatchResult, 0, len(unclaimed))
	for _, tag := range unclaimed {
		id := tag.ID
		note := "no IO List device references this PLC record"
		if tag.Category == domain.CategoryENetDevice {
			note = "expected PLC-only (overload/VFD)"
		}
		results = append(results, domain.MatchResult{
			Classification:  domain.ClassPLCOnly,
			WinningStrategy: 0,
			Confidence:      domain.ConfidenceNone,
			PLCRefs:         []domain.PLCTagID{tag.ID},
			AuditTrail: []domain.AuditEntry{{
				StrategyID:   0,
				StrategyName: "PLC-Only Sweep",
				Outcome:      domain.OutcomeMatched,
				Evidence:     &id,
				Note:         note,
			}},
		})
	}
	return results
}
