package naming

import (
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		stem string

		wantKind   Kind
		wantPrefix string
		wantToken  string
		wantBase   string
		wantIndex  int
	}{
		// Plain
		{name: "plain word", stem: "Goblin", wantKind: KindPlain, wantPrefix: "Goblin"},
		{name: "plain with spaces", stem: "Walled Garden", wantKind: KindPlain, wantPrefix: "Walled Garden"},
		{name: "digits mid-stem", stem: "Orc2Warrior", wantKind: KindPlain, wantPrefix: "Orc2Warrior"},
		{name: "digits then word", stem: "Orc 02 Big", wantKind: KindPlain, wantPrefix: "Orc 02 Big"},

		// Numbered
		{name: "space separated", stem: "Orc 01", wantKind: KindNumbered, wantPrefix: "Orc", wantToken: "01"},
		{name: "underscore separated", stem: "Orc_003", wantKind: KindNumbered, wantPrefix: "Orc", wantToken: "003"},
		{name: "hyphen separated", stem: "Orc-7", wantKind: KindNumbered, wantPrefix: "Orc", wantToken: "7"},
		{name: "mixed separators", stem: "Orc _- 12", wantKind: KindNumbered, wantPrefix: "Orc", wantToken: "12"},
		{name: "no separator", stem: "Orc12", wantKind: KindNumbered, wantPrefix: "Orc", wantToken: "12"},
		{name: "longest trailing run", stem: "Walled Garden 001", wantKind: KindNumbered, wantPrefix: "Walled Garden", wantToken: "001"},
		{name: "earlier digits kept in prefix", stem: "Tower 2 Floor 10", wantKind: KindNumbered, wantPrefix: "Tower 2 Floor", wantToken: "10"},
		{name: "digits only", stem: "0042", wantKind: KindNumbered, wantPrefix: "", wantToken: "0042"},

		// Varicolor
		{
			name: "varicolor underscore", stem: "Tree vari_01",
			wantKind: KindVaricolor, wantPrefix: "Tree", wantToken: "01", wantBase: "Tree", wantIndex: 1,
		},
		{
			name: "varicolor case-insensitive", stem: "Tree VARI 2",
			wantKind: KindVaricolor, wantPrefix: "Tree", wantToken: "2", wantBase: "Tree", wantIndex: 2,
		},
		{
			name: "varicolor hyphen no gap", stem: "Tree-vari-03",
			wantKind: KindVaricolor, wantPrefix: "Tree", wantToken: "03", wantBase: "Tree", wantIndex: 3,
		},
		{
			name: "varicolor no separator before number", stem: "Tree vari12",
			wantKind: KindVaricolor, wantPrefix: "Tree", wantToken: "12", wantBase: "Tree", wantIndex: 12,
		},
		{
			name: "varicolor at start", stem: "vari_01",
			wantKind: KindVaricolor, wantPrefix: "", wantToken: "01", wantBase: "", wantIndex: 1,
		},
		{
			name: "varicolor with numbered base", stem: "Woodpecker Whale 2 vari_02",
			wantKind: KindNumberedVaricolor, wantPrefix: "Woodpecker Whale", wantToken: "2",
			wantBase: "Woodpecker Whale 2", wantIndex: 2,
		},
		{
			name: "number after marker", stem: "Tree vari_01 02",
			wantKind: KindNumberedVaricolor, wantPrefix: "Tree", wantToken: "02", wantBase: "Tree", wantIndex: 1,
		},

		// Not varicolor
		{name: "vari inside a word", stem: "Navari01", wantKind: KindNumbered, wantPrefix: "Navari", wantToken: "01"},
		{name: "variant word", stem: "Tree variant 1", wantKind: KindNumbered, wantPrefix: "Tree variant", wantToken: "1"},
		{name: "vari without number", stem: "Tree vari", wantKind: KindPlain, wantPrefix: "Tree vari"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.stem)
			if got.Stem != tc.stem {
				t.Errorf("Stem = %q, want %q", got.Stem, tc.stem)
			}
			if got.Kind() != tc.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind(), tc.wantKind)
			}
			if got.Prefix != tc.wantPrefix {
				t.Errorf("Prefix = %q, want %q", got.Prefix, tc.wantPrefix)
			}
			if got.NumericToken != tc.wantToken {
				t.Errorf("NumericToken = %q, want %q", got.NumericToken, tc.wantToken)
			}
			if got.HasNumber != (tc.wantToken != "") {
				t.Errorf("HasNumber = %v, want %v", got.HasNumber, tc.wantToken != "")
			}
			isVari := tc.wantKind == KindVaricolor || tc.wantKind == KindNumberedVaricolor
			if got.IsVaricolor != isVari {
				t.Fatalf("IsVaricolor = %v, want %v", got.IsVaricolor, isVari)
			}
			if isVari {
				if got.BaseLabel != tc.wantBase {
					t.Errorf("BaseLabel = %q, want %q", got.BaseLabel, tc.wantBase)
				}
				if got.VaricolorIndex != tc.wantIndex {
					t.Errorf("VaricolorIndex = %d, want %d", got.VaricolorIndex, tc.wantIndex)
				}
			}
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	a := Classify("Orc 01")
	b := Classify("Orc 01")
	if a != b {
		t.Errorf("Classify not deterministic: %+v vs %+v", a, b)
	}
}

func TestCompareTokens(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"01", "1", 0},
		{"009", "10", -1},
		{"100", "99", 1},
		{"0", "000", 0},
		{"123456789012345678901234567890", "123456789012345678901234567891", -1},
	}
	for _, tc := range cases {
		if got := CompareTokens(tc.a, tc.b); got != tc.want {
			t.Errorf("CompareTokens(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestStripExt(t *testing.T) {
	cases := map[string]string{
		"Orc 01.png":        "Orc 01",
		"Tree vari_01.PNG":  "Tree vari_01",
		"archive.tar.png":   "archive.tar",
		"noext":             "noext",
		"Walled Garden.jpg": "Walled Garden",
	}
	for in, want := range cases {
		if got := StripExt(in); got != want {
			t.Errorf("StripExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPlain.String() != "plain" || KindNumberedVaricolor.String() != "numbered+varicolor" {
		t.Errorf("unexpected Kind strings: %s, %s", KindPlain, KindNumberedVaricolor)
	}
}
