package parser

import (
	"math"
	"testing"

	"github.com/Luisfch1/CONTROL/internal/sheet"
)

func TestParseNumberFromNumericCell(t *testing.T) {
	t.Parallel()

	v, ok := ParseNumber(sheet.Number(1234.5))
	if !ok || v != 1234.5 {
		t.Fatalf("want 1234.5 got %v ok=%v", v, ok)
	}
	if _, ok := ParseNumber(sheet.Number(math.NaN())); ok {
		t.Fatalf("NaN must not parse")
	}
	if _, ok := ParseNumber(sheet.Number(math.Inf(1))); ok {
		t.Fatalf("Inf must not parse")
	}
}

func TestParseNumberSeparators(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"1.234.567,89": 1234567.89,
		"1,5":          1.5,
		"1234.5":       1234.5,
		"$ 2.500,00":   2500,
		"  42  ":       42,
		"-3,25":        -3.25,
	}
	for in, want := range cases {
		got, ok := ParseNumber(sheet.Text(in))
		if !ok {
			t.Fatalf("%q: expected parse", in)
		}
		if got != want {
			t.Fatalf("%q: want %v got %v", in, want, got)
		}
	}
}

func TestParseNumberRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"m2", "N/A", "$", "1.2.3,4,5"} {
		if _, ok := ParseNumber(sheet.Text(in)); ok {
			t.Fatalf("%q: expected parse failure", in)
		}
	}
	if _, ok := ParseNumber(sheet.Empty()); ok {
		t.Fatalf("empty cell must not parse")
	}
}

func TestFractionDigits(t *testing.T) {
	t.Parallel()

	if got := fractionDigits(10); got != 0 {
		t.Fatalf("10: want 0 got %d", got)
	}
	if got := fractionDigits(1.25); got != 2 {
		t.Fatalf("1.25: want 2 got %d", got)
	}
	if got := fractionDigits(1.2345); got != 4 {
		t.Fatalf("1.2345: want 4 got %d", got)
	}
}
