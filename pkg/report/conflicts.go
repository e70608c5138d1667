/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: conflicts.go
Description: The conflicts-list downstream output — the Conflict-classified
subset of a MatchResult sequence.
*/

package report

import "github.com/mesa-automation/io-crosscheck/pkg/domain"

// Conflicts filters a MatchResult sequence down to the Conflict-classified
// subset, preserving input order.
func Conflicts(results []domain.MatchResult) []domain.MatchResult {
	out := make([]domain.MatchResult, 0)
	for _, r := range results {
		if r.Classification == domain.ClassConflict {
			out = append(out, r)
		}
	}
	return out
}
