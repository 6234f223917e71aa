package layout

import (
	"testing"
	"time"
)

func TestFormatMoneyGermanNotation(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{19, "19,00 €"},
		{1234.5, "1.234,50 €"},
		{0, "0,00 €"},
		{1000000, "1.000.000,00 €"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Errorf("formatMoney(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{19, "19 %"},
		{7, "7 %"},
		{0, "0 %"},
		{7.5, "7,5 %"},
	}
	for _, tc := range cases {
		if got := formatRate(tc.in); got != tc.want {
			t.Errorf("formatRate(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	if got := formatDate(d); got != "07.03.2024" {
		t.Errorf("formatDate = %q, want 07.03.2024", got)
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()
	if got := funcs["money"](12.5); got != "12,50 €" {
		t.Errorf("money verb = %q", got)
	}
	if got := funcs["date"](time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)); got != "02.01.2024" {
		t.Errorf("date verb = %q", got)
	}
	// non-matching types fall back to fmt.Sprint
	if got := funcs["money"]("n/a"); got != "n/a" {
		t.Errorf("money fallback = %q", got)
	}
}
