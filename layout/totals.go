package layout

import "github.com/fakturo/druckwerk/document"

// itemAmounts are the derived per-line amounts. Unit prices are stored gross;
// the net price is recovered by stripping VAT at render time. Downstream sums
// depend on this derivation, so it is kept exactly as is.
type itemAmounts struct {
	lineNet   float64
	lineVAT   float64
	lineGross float64
}

// rateSum accumulates VAT for one distinct tax rate.
type rateSum struct {
	rate   float64
	amount float64
}

// taxTotals folds line items into net/gross sums and per-rate VAT. Rates keep
// the order of their first occurrence in the item list; the totals block
// renders them in exactly that order, never numerically sorted.
type taxTotals struct {
	net   float64
	gross float64
	rates []rateSum
}

// add lays the item into the running totals and returns its line amounts.
func (t *taxTotals) add(item document.Item) itemAmounts {
	qty := float64(item.Quantity)
	net := item.UnitPrice / (1 + item.TaxRate/100)
	a := itemAmounts{
		lineNet:   qty * net,
		lineGross: qty * item.UnitPrice,
	}
	a.lineVAT = a.lineNet * item.TaxRate / 100

	t.net += a.lineNet
	t.gross += a.lineGross
	for i := range t.rates {
		if t.rates[i].rate == item.TaxRate {
			t.rates[i].amount += a.lineVAT
			return a
		}
	}
	t.rates = append(t.rates, rateSum{rate: item.TaxRate, amount: a.lineVAT})
	return a
}
