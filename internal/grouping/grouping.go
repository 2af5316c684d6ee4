// Package grouping partitions the classified names of one directory into
// numbered groups and varicolor pairs.
//
// Both builders are a stable partition followed by a filter. Groups and
// pairs are independent: a symbol may belong to one of each.
package grouping

import (
	"sort"

	"github.com/backmassage/symcat/internal/naming"
)

// Group is a set of symbols sharing a prefix with distinct numeric
// suffixes. The consuming application picks one member at random on
// placement, so RandomSelection is always set.
type Group struct {
	Key             string
	Members         []string // Symbol ids, ordered by numeric suffix.
	RandomSelection bool
}

// VaricolorMember is one color variant in a [VaricolorPair].
type VaricolorMember struct {
	Index int
	ID    string
}

// VaricolorPair links color variants sharing a base label.
type VaricolorPair struct {
	BaseLabel string
	Members   []VaricolorMember // Ordered by Index.
}

// BuildGroups partitions names by Prefix and keeps partitions with at least
// two distinct numeric values. Names without a number never join a group.
// Groups are returned in order of their prefix's first appearance.
func BuildGroups(names []naming.ClassifiedName) []Group {
	parts := newOrderedMultimap[string, naming.ClassifiedName]()
	for _, n := range names {
		if n.HasNumber {
			parts.add(n.Prefix, n)
		}
	}

	var groups []Group
	parts.each(func(prefix string, members []naming.ClassifiedName) {
		if !hasDistinctTokens(members) {
			return
		}
		sorted := append([]naming.ClassifiedName(nil), members...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if c := naming.CompareTokens(sorted[i].NumericToken, sorted[j].NumericToken); c != 0 {
				return c < 0
			}
			return sorted[i].Stem < sorted[j].Stem
		})
		g := Group{Key: prefix, RandomSelection: true}
		for _, m := range sorted {
			g.Members = append(g.Members, m.Stem)
		}
		groups = append(groups, g)
	})
	return groups
}

// hasDistinctTokens reports whether members carry at least two different
// numeric values. "01" and "1" count as the same value.
func hasDistinctTokens(members []naming.ClassifiedName) bool {
	for _, m := range members[1:] {
		if naming.CompareTokens(m.NumericToken, members[0].NumericToken) != 0 {
			return true
		}
	}
	return false
}

// BuildVaricolorPairs partitions varicolor names by BaseLabel and keeps
// partitions with at least two distinct indices. Indices are compared by
// their digit tokens, so values past the int range stay distinct. Pairs are
// returned in order of their base label's first appearance.
func BuildVaricolorPairs(names []naming.ClassifiedName) []VaricolorPair {
	parts := newOrderedMultimap[string, naming.ClassifiedName]()
	for _, n := range names {
		if n.IsVaricolor {
			parts.add(n.BaseLabel, n)
		}
	}

	var pairs []VaricolorPair
	parts.each(func(base string, members []naming.ClassifiedName) {
		sorted := append([]naming.ClassifiedName(nil), members...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if c := naming.CompareTokens(sorted[i].VaricolorToken, sorted[j].VaricolorToken); c != 0 {
				return c < 0
			}
			return sorted[i].Stem < sorted[j].Stem
		})
		if naming.CompareTokens(sorted[0].VaricolorToken, sorted[len(sorted)-1].VaricolorToken) == 0 {
			return
		}
		p := VaricolorPair{BaseLabel: base}
		for _, m := range sorted {
			p.Members = append(p.Members, VaricolorMember{Index: m.VaricolorIndex, ID: m.Stem})
		}
		pairs = append(pairs, p)
	})
	return pairs
}

// Membership indexes groups and pairs by symbol id for cross-referencing.
type Membership struct {
	group map[string]string
	pair  map[string]pairSlot
}

type pairSlot struct {
	base  string
	index int
}

// IndexMembership builds a lookup from symbol id to the group key and pair
// slot the symbol belongs to.
func IndexMembership(groups []Group, pairs []VaricolorPair) Membership {
	m := Membership{
		group: make(map[string]string),
		pair:  make(map[string]pairSlot),
	}
	for _, g := range groups {
		for _, id := range g.Members {
			m.group[id] = g.Key
		}
	}
	for _, p := range pairs {
		for _, mem := range p.Members {
			m.pair[mem.ID] = pairSlot{base: p.BaseLabel, index: mem.Index}
		}
	}
	return m
}

// Group returns the key of the group containing symbol id.
func (m Membership) Group(id string) (string, bool) {
	k, ok := m.group[id]
	return k, ok
}

// Varicolor returns the base label and index of the pair slot holding id.
func (m Membership) Varicolor(id string) (base string, index int, ok bool) {
	slot, ok := m.pair[id]
	return slot.base, slot.index, ok
}
