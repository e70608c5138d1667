/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategy5_tagname.go
Description: Strategy 5 — Tag Name Normalization Match. The last strategy
that can produce Both; everything after it is either a rack sweep or a
fallback to IOListOnly. Exact canonical-string equality only, no substring
or prefix matching — LT611 must never catch LT6110.
*/

package cascade

import (
	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/index"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

// TagNameNormalizationMatch is Strategy 5.
type TagNameNormalizationMatch struct{}

func (TagNameNormalizationMatch) ID() int      { return 5 }
func (TagNameNormalizationMatch) Name() string { return "Tag Name Normalization Match" }

func (TagNameNormalizationMatch) AppliesTo(dev domain.IODevice) bool {
	return dev.IOTag != "" || dev.DeviceTag != ""
}

func (TagNameNormalizationMatch) TryMatch(dev domain.IODevice, idx *index.Index, cfg domain.Config) Outcome {
	candidates := make([]string, 0, 2)
	seen := make(map[string]bool, 2)
	for _, raw := range []string{dev.IOTag, dev.DeviceTag} {
		canon := normalize.CanonicalizeTagName(raw, cfg)
		if canon == "" || seen[canon] {
			continue
		}
		seen[canon] = true
		candidates = append(candidates, canon)
	}
	if len(candidates) == 0 {
		return failed("no io-tag or device-tag to canonicalize")
	}

	for _, canon := range candidates {
		tagHits, commentHits := idx.LookupCanonicalName(canon)
		if len(tagHits) > 0 {
			return Outcome{
				Fired:          true,
				Classification: domain.ClassBoth,
				Confidence:     domain.ConfidenceHigh,
				PLCRefs:        tagHits,
				ClaimRefs:      tagHits,
				KeyConsulted:   canon,
				Note:           "canonical name matches a TAG base-name",
			}
		}
		if len(commentHits) > 0 {
			return Outcome{
				Fired:          true,
				Classification: domain.ClassBoth,
				Confidence:     domain.ConfidenceHigh,
				PLCRefs:        commentHits,
				ClaimRefs:      commentHits,
				KeyConsulted:   canon,
				Note:           "canonical name matches a COMMENT description",
			}
		}
	}

	return failed("no TAG or COMMENT shares a canonical name with " + candidates[0])
}
