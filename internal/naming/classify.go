package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Kind tags which patterns matched a stem.
type Kind int

const (
	KindPlain             Kind = iota // No number, no varicolor marker.
	KindNumbered                      // Trailing number only.
	KindVaricolor                     // Varicolor marker; number (if any) is the marker's index.
	KindNumberedVaricolor             // Varicolor marker plus a separate trailing number.
)

func (k Kind) String() string {
	switch k {
	case KindNumbered:
		return "numbered"
	case KindVaricolor:
		return "varicolor"
	case KindNumberedVaricolor:
		return "numbered+varicolor"
	default:
		return "plain"
	}
}

// ClassifiedName is the structural signature of one stem.
type ClassifiedName struct {
	Stem string

	// Grouping signature. Prefix is always set; NumericToken only when
	// HasNumber is true. The token keeps leading zeros.
	Prefix       string
	NumericToken string
	HasNumber    bool

	// Varicolor signature, valid when IsVaricolor is true.
	IsVaricolor    bool
	VaricolorIndex int
	VaricolorToken string
	BaseLabel      string

	numberFromMarker bool
}

// Kind reports which patterns matched.
func (c ClassifiedName) Kind() Kind {
	switch {
	case c.IsVaricolor && c.HasNumber && !c.numberFromMarker:
		return KindNumberedVaricolor
	case c.IsVaricolor:
		return KindVaricolor
	case c.HasNumber:
		return KindNumbered
	default:
		return KindPlain
	}
}

// separators trimmed around prefixes, base labels and markers.
const separators = " \t_-"

var (
	// The marker must open the stem or follow a separator, so "Navari01"
	// is not varicolor. The digit run is greedy, so "vari_012" is index 12.
	reVaricolor = regexp.MustCompile(`(?i)(^|[\s_\-])vari[\s_\-]?([0-9]+)`)

	// Lazy prefix so the digit group takes the longest trailing run.
	reTrailingNumber = regexp.MustCompile(`^(.*?)([0-9]+)$`)
)

// Classify parses a stem into its grouping and varicolor signature.
// The caller strips the extension (see [StripExt]).
func Classify(stem string) ClassifiedName {
	c := ClassifiedName{Stem: stem, Prefix: stem}
	remainder := stem

	if m := reVaricolor.FindStringSubmatchIndex(stem); m != nil {
		markerStart := m[3] // end of the leading separator group
		before := stem[:markerStart]
		after := stem[m[1]:]

		c.IsVaricolor = true
		c.VaricolorToken = stem[m[4]:m[5]]
		c.VaricolorIndex = tokenInt(c.VaricolorToken)
		c.BaseLabel = strings.Trim(before, separators)

		head := strings.TrimRight(before, separators)
		if head == "" {
			remainder = strings.TrimLeft(after, separators)
		} else {
			remainder = head + after
		}
		c.Prefix = strings.TrimRight(remainder, separators)
	}

	if m := reTrailingNumber.FindStringSubmatch(remainder); m != nil {
		c.HasNumber = true
		c.NumericToken = m[2]
		c.Prefix = strings.TrimRight(m[1], separators)
		return c
	}

	if c.IsVaricolor {
		c.HasNumber = true
		c.NumericToken = c.VaricolorToken
		c.numberFromMarker = true
	}
	return c
}

// tokenInt converts a digit run to int. Runs too long for int saturate, so
// callers that compare indices use VaricolorToken with [CompareTokens].
func tokenInt(token string) int {
	n, err := strconv.Atoi(token)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

// CompareTokens compares two decimal digit runs by numeric value without
// converting them, so runs of any length are safe. Returns -1, 0 or +1.
// "01" and "1" compare equal.
func CompareTokens(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// StripExt returns filename without its final extension.
func StripExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
