package pricing

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"12.5", 12.5},
		{"1.234,56", 1234.56},
		{"R$ 10,00", 10},
		{"  7 ", 7},
		{"abc", 0},
		{"", 0},
		{"12,3,4", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.raw); got != tc.want {
			t.Fatalf("ParseAmount(%q): expected %v got %v", tc.raw, tc.want, got)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:          "R$ 0,00",
		12.5:       "R$ 12,50",
		1234.567:   "R$ 1.234,57",
		1234567.89: "R$ 1.234.567,89",
	}
	for in, want := range cases {
		if got := FormatBRL(in); got != want {
			t.Fatalf("FormatBRL(%v): expected %q got %q", in, want, got)
		}
	}
}
