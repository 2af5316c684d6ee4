// Package catalog renders registered symbols, groups and varicolor pairs
// into the symbol catalog text format and writes it atomically.
//
// Format version 1, one record per line, LF endings, strings quoted with
// Go syntax and escaped to ASCII:
//
//	symcat-catalog 1
//	section <n> <"dir">
//	symbol <"id"> path <"abs"> [size <w> <h>] [group <"key">] [varicolor <"base"> <index>]
//	group <"key"> random <count> <"id">...
//	varicolor <"base"> <count> <index> <"id">...
//	end
package catalog

import (
	"github.com/backmassage/symcat/internal/grouping"
	"github.com/backmassage/symcat/internal/registry"
)

// Magic and Version open every catalog.
const (
	Magic   = "symcat-catalog"
	Version = 1
)

// Section is the output of one source directory.
type Section struct {
	Index   int
	Dir     string
	Symbols []registry.Symbol
	Groups  []grouping.Group
	Pairs   []grouping.VaricolorPair
}

// Catalog is the in-memory form of the whole output file.
type Catalog struct {
	Sections []Section
}

// Add appends a section.
func (c *Catalog) Add(s Section) {
	c.Sections = append(c.Sections, s)
}

// SymbolCount is the number of symbol records across all sections.
func (c *Catalog) SymbolCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Symbols)
	}
	return n
}
