package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"

	"github.com/backmassage/symcat/internal/atomicfile"
	"github.com/backmassage/symcat/internal/grouping"
	"github.com/backmassage/symcat/internal/registry"
)

// Encode writes c to w. Output depends only on c, so equal catalogs encode
// to identical bytes.
func Encode(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d\n", Magic, Version)
	for _, s := range c.Sections {
		encodeSection(bw, s)
	}
	return bw.Flush()
}

func encodeSection(w *bufio.Writer, s Section) {
	fmt.Fprintf(w, "section %d %s\n", s.Index, strconv.QuoteToASCII(s.Dir))

	member := grouping.IndexMembership(s.Groups, s.Pairs)
	for _, sym := range s.Symbols {
		encodeSymbol(w, sym, member)
	}
	for _, g := range s.Groups {
		fmt.Fprintf(w, "group %s random %d", strconv.QuoteToASCII(g.Key), len(g.Members))
		for _, id := range g.Members {
			w.WriteByte(' ')
			w.WriteString(strconv.QuoteToASCII(id))
		}
		w.WriteByte('\n')
	}
	for _, p := range s.Pairs {
		fmt.Fprintf(w, "varicolor %s %d", strconv.QuoteToASCII(p.BaseLabel), len(p.Members))
		for _, m := range p.Members {
			fmt.Fprintf(w, " %d %s", m.Index, strconv.QuoteToASCII(m.ID))
		}
		w.WriteByte('\n')
	}
	w.WriteString("end\n")
}

func encodeSymbol(w *bufio.Writer, sym registry.Symbol, member grouping.Membership) {
	fmt.Fprintf(w, "symbol %s path %s", strconv.QuoteToASCII(sym.ID), strconv.QuoteToASCII(sym.Path))
	if sym.HasSize() {
		fmt.Fprintf(w, " size %d %d", sym.Width, sym.Height)
	}
	if key, ok := member.Group(sym.ID); ok {
		fmt.Fprintf(w, " group %s", strconv.QuoteToASCII(key))
	}
	if base, idx, ok := member.Varicolor(sym.ID); ok {
		fmt.Fprintf(w, " varicolor %s %d", strconv.QuoteToASCII(base), idx)
	}
	w.WriteByte('\n')
}

// Marshal returns the encoded catalog.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes c fully in memory and replaces path atomically. It
// returns the number of bytes written.
func WriteFile(path string, c *Catalog) (int, error) {
	return WriteFileFs(afero.NewOsFs(), path, c)
}

// WriteFileFs is WriteFile on an arbitrary filesystem.
func WriteFileFs(fs afero.Fs, path string, c *Catalog) (int, error) {
	data, err := Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("encode catalog: %w", err)
	}
	if err := atomicfile.WriteFile(fs, path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write catalog %s: %w", path, err)
	}
	return len(data), nil
}
