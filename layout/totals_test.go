package layout

import (
	"math"
	"testing"

	"github.com/fakturo/druckwerk/document"
)

const amountEps = 1e-6

func TestTaxTotalsDerivesNetFromGross(t *testing.T) {
	totals := &taxTotals{}
	a := totals.add(document.Item{Description: "Beratung", Quantity: 2, UnitPrice: 119.00, TaxRate: 19})

	if math.Abs(a.lineNet-200) > amountEps {
		t.Errorf("lineNet = %g, want 200", a.lineNet)
	}
	if math.Abs(a.lineVAT-38) > amountEps {
		t.Errorf("lineVAT = %g, want 38", a.lineVAT)
	}
	if math.Abs(a.lineGross-238) > amountEps {
		t.Errorf("lineGross = %g, want 238", a.lineGross)
	}
	// net + VAT must round-trip back to gross
	if math.Abs(a.lineNet+a.lineVAT-a.lineGross) > amountEps {
		t.Errorf("net %g + vat %g != gross %g", a.lineNet, a.lineVAT, a.lineGross)
	}
}

func TestTaxTotalsZeroRate(t *testing.T) {
	totals := &taxTotals{}
	a := totals.add(document.Item{Quantity: 3, UnitPrice: 50, TaxRate: 0})
	if a.lineNet != a.lineGross {
		t.Errorf("zero rate: net %g must equal gross %g", a.lineNet, a.lineGross)
	}
	if a.lineVAT != 0 {
		t.Errorf("zero rate: vat = %g, want 0", a.lineVAT)
	}
}

func TestTaxTotalsRateOrderIsFirstOccurrence(t *testing.T) {
	totals := &taxTotals{}
	totals.add(document.Item{Quantity: 1, UnitPrice: 119, TaxRate: 19})
	totals.add(document.Item{Quantity: 1, UnitPrice: 107, TaxRate: 7})
	totals.add(document.Item{Quantity: 1, UnitPrice: 238, TaxRate: 19})

	if len(totals.rates) != 2 {
		t.Fatalf("got %d rate buckets, want 2", len(totals.rates))
	}
	if totals.rates[0].rate != 19 || totals.rates[1].rate != 7 {
		t.Errorf("rate order = [%g %g], want first-occurrence order [19 7]",
			totals.rates[0].rate, totals.rates[1].rate)
	}
	if math.Abs(totals.rates[0].amount-57) > amountEps {
		t.Errorf("19%% bucket = %g, want 57", totals.rates[0].amount)
	}
	if math.Abs(totals.rates[1].amount-7) > amountEps {
		t.Errorf("7%% bucket = %g, want 7", totals.rates[1].amount)
	}
	if math.Abs(totals.gross-(totals.net+57+7)) > amountEps {
		t.Errorf("gross %g != net %g + vat sums", totals.gross, totals.net)
	}
}
