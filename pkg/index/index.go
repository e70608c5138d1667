/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: index.go
Description: In-memory multi-way lookup structures built once from the
classified PLCTag stream, mirroring how the fuzzer's Corpus wraps a map with
a mutex for thread-safe access — except here the lookup tables themselves are
frozen after Build and only the claimed set stays mutable.
*/

package index

import (
	"sync"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
)

// PLC5Tuple is the 5-tuple canonical key for legacy PLC5 addressing.
type PLC5Tuple = string // canonical rendering, e.g. "RACK0_GROUP0_SLOT0_IO.READ[14]"

// RackKey is the (N, D) rack-parent key, e.g. "RACK11:I".
type RackKey = string

// Index is a read-only structure after Build returns. Iteration order of
// every list is input order, so results built from it stay deterministic.
type Index struct {
	tags []domain.PLCTag // all classified tags, by ID position

	byCLXAddress   map[string][]domain.PLCTagID // Bit-Comment records at an address
	byRackTag      map[RackKey]bool             // Rack-IO TAG parents present
	byRackTagIDs   map[RackKey][]domain.PLCTagID // same parents, kept for audit reference
	byPLC5Tuple    map[PLC5Tuple][]domain.PLCTagID
	byCanonicalTAG map[string][]domain.PLCTagID // TAG hits, keyed by canonical base-name
	byCanonicalCOM map[string][]domain.PLCTagID // COMMENT-description hits, same key space
	byENetDevice   map[string][]domain.PLCTagID // upper-cased device id -> ENet-Device tags

	mu      sync.Mutex
	claimed map[domain.PLCTagID]bool
}

// Build constructs the Index from a classified PLCTag stream. tags must
// already have Category populated by classify.ClassifyTag. The Index takes
// ownership of the slice's identities (tags[i].ID == domain.PLCTagID(i)) but
// not the payload — callers keep the slice alive for the run's duration.
func Build(tags []domain.PLCTag, cfg domain.Config) *Index {
	idx := &Index{
		tags:           tags,
		byCLXAddress:   make(map[string][]domain.PLCTagID),
		byRackTag:      make(map[RackKey]bool),
		byRackTagIDs:   make(map[RackKey][]domain.PLCTagID),
		byPLC5Tuple:    make(map[PLC5Tuple][]domain.PLCTagID),
		byCanonicalTAG: make(map[string][]domain.PLCTagID),
		byCanonicalCOM: make(map[string][]domain.PLCTagID),
		byENetDevice:   make(map[string][]domain.PLCTagID),
		claimed:        make(map[domain.PLCTagID]bool),
	}

	for i := range tags {
		tag := &tags[i]
		switch tag.Category {
		case domain.CategoryBitComment:
			if key, ok := normalize.CanonicalizeAddress(tag.Specifier); ok {
				idx.byCLXAddress[key.Key] = append(idx.byCLXAddress[key.Key], tag.ID)
			}
		case domain.CategoryRackIO:
			if key, ok := normalize.RackIONameKey(tag.Name); ok {
				idx.byRackTag[key] = true
				idx.byRackTagIDs[key] = append(idx.byRackTagIDs[key], tag.ID)
			}
		case domain.CategoryENetDevice:
			if device, ok := normalize.ExtractENetPrefix(tag.BaseName, cfg); ok {
				upper := upperTrim(device)
				idx.byENetDevice[upper] = append(idx.byENetDevice[upper], tag.ID)
			}
		}

		if tag.RecordKind == domain.RecordTAG {
			// PLC5 systems sometimes name a TAG directly after its address
			// (e.g. "Rack0_Group0_Slot0_IO.READ[14]"); index that shape so
			// Strategy 2 can look it up by canonical tuple.
			if key, ok := normalize.CanonicalizeAddress(tag.Name); ok && key.Format == domain.AddressPLC5 {
				idx.byPLC5Tuple[key.Key] = append(idx.byPLC5Tuple[key.Key], tag.ID)
			}
			canon := normalize.CanonicalizeTagName(tag.BaseName, cfg)
			if canon != "" {
				idx.byCanonicalTAG[canon] = append(idx.byCanonicalTAG[canon], tag.ID)
			}
		}
		if tag.RecordKind == domain.RecordCOMMENT && tag.Description != "" {
			canon := normalize.CanonicalizeTagName(tag.Description, cfg)
			if canon != "" {
				idx.byCanonicalCOM[canon] = append(idx.byCanonicalCOM[canon], tag.ID)
			}
		}
	}

	return idx
}

func upperTrim(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 32
		}
		out = append(out, c)
	}
	return string(out)
}

// Tag returns the PLCTag for a given identity.
func (idx *Index) Tag(id domain.PLCTagID) domain.PLCTag {
	return idx.tags[id]
}

// AllTags returns every classified tag in input order.
func (idx *Index) AllTags() []domain.PLCTag {
	return idx.tags
}

// LookupCLXAddress returns the Bit-Comment records at a canonical CLX
// address key, in input order.
func (idx *Index) LookupCLXAddress(key string) []domain.PLCTagID {
	return idx.byCLXAddress[key]
}

// HasRackTag reports whether a Rack-IO TAG parent exists for the given key.
func (idx *Index) HasRackTag(key RackKey) bool {
	return idx.byRackTag[key]
}

// LookupRackTag returns the Rack-IO TAG identities backing a rack-parent
// key, in input order — used for audit reference by Strategy 3.
func (idx *Index) LookupRackTag(key RackKey) []domain.PLCTagID {
	return idx.byRackTagIDs[key]
}

// LookupPLC5Tuple returns the TAG records whose name canonicalizes to the
// given PLC5 tuple key, in input order.
func (idx *Index) LookupPLC5Tuple(key PLC5Tuple) []domain.PLCTagID {
	return idx.byPLC5Tuple[key]
}

// LookupCanonicalName returns the TAG hits and COMMENT-description hits for
// a canonical base-name, kept as two separate lists so the cascade can tell
// them apart.
func (idx *Index) LookupCanonicalName(canon string) (tagHits, commentHits []domain.PLCTagID) {
	return idx.byCanonicalTAG[canon], idx.byCanonicalCOM[canon]
}

// LookupENetDevice returns the ENet-Device tags for an upper-cased device
// identifier.
func (idx *Index) LookupENetDevice(deviceUpper string) []domain.PLCTagID {
	return idx.byENetDevice[deviceUpper]
}

// Claim marks a set of PLCTag identities as consumed by a successful
// strategy. Safe for concurrent use — the only mutable structure in the
// Index.
func (idx *Index) Claim(ids ...domain.PLCTagID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, id := range ids {
		idx.claimed[id] = true
	}
}

// IsClaimed reports whether a PLCTag identity has already been consumed.
func (idx *Index) IsClaimed(id domain.PLCTagID) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.claimed[id]
}

// Unclaimed returns every tag of the given categories not yet claimed, in
// input order — used by the PLC-Only sweep.
func (idx *Index) Unclaimed(categories ...domain.TagCategory) []domain.PLCTag {
	want := make(map[domain.TagCategory]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var out []domain.PLCTag
	for i := range idx.tags {
		tag := idx.tags[i]
		if !want[tag.Category] {
			continue
		}
		if idx.claimed[tag.ID] {
			continue
		}
		out = append(out, tag)
	}
	return out
}
