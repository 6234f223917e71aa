package layout

import (
	"github.com/fakturo/druckwerk/binding"
	"github.com/fakturo/druckwerk/document"
)

// column describes one item-table column.
type column struct {
	label string
	width float64
}

// variant carries everything that differs between an invoice and the three
// dunning levels: title, body copy and the fee. The table, totals and footer
// machinery is shared.
type variant struct {
	title   string
	body    []string
	fee     float64
	showVAT bool
	kind    string // "Rechnung", "Zahlungserinnerung", "Mahnung"
}

var (
	tplTitleInvoice = binding.MustParse("Rechnung Nr. ${number}")
	tplTitleLevel1  = binding.MustParse("Zahlungserinnerung zur Rechnung Nr. ${number}")
	tplTitleLevel2  = binding.MustParse("1. Mahnung zur Rechnung Nr. ${number}")
	tplTitleLevel3  = binding.MustParse("2. Mahnung zur Rechnung Nr. ${number}")

	tplPaidOn = binding.MustParse("Der Rechnungsbetrag wurde bereits vollständig beglichen (Zahlungseingang am ${paidOn|date}).")
	tplPaid   = binding.MustParse("Der Rechnungsbetrag wurde bereits vollständig beglichen.")

	tplInvoiceDeadline = binding.MustParse("Bitte überweisen Sie den Rechnungsbetrag innerhalb von ${days} Tagen auf das unten angegebene Konto.")

	tplSalutation = binding.MustParse("Sehr geehrte Damen und Herren,")

	tplOverdue1  = binding.MustParse("sicherlich haben Sie übersehen, die Rechnung Nr. ${number} vom ${date|date} zu begleichen.")
	tplRemind1   = binding.MustParse("wir bitten Sie, den offenen Betrag innerhalb von ${days} Tagen auf das unten angegebene Konto zu überweisen.")
	tplFee1      = binding.MustParse("Für diese Zahlungserinnerung berechnen wir eine Mahngebühr von ${fee|money}.")
	tplOverdue2  = binding.MustParse("trotz unserer Zahlungserinnerung ist die Rechnung Nr. ${number} vom ${date|date} weiterhin unbeglichen.")
	tplOverdue3  = binding.MustParse("trotz wiederholter Aufforderung ist die Rechnung Nr. ${number} vom ${date|date} weiterhin unbeglichen.")
	tplDemand    = binding.MustParse("Wir fordern Sie auf, den offenen Betrag zuzüglich der Mahngebühr von ${fee|money} innerhalb von ${days} Tagen zu überweisen.")
	tplDemand3   = binding.MustParse("Wir fordern Sie letztmalig auf, den offenen Betrag zuzüglich der Mahngebühr von ${fee|money} innerhalb von ${days} Tagen zu überweisen.")
	tplDemandNoF = binding.MustParse("Wir fordern Sie auf, den offenen Betrag innerhalb von ${days} Tagen zu überweisen.")
	tplEscalate  = binding.MustParse("Andernfalls werden wir ohne weitere Ankündigung rechtliche Schritte einleiten.")

	tplClosing = binding.MustParse("Vielen Dank für Ihren Auftrag!")
)

// invoiceDeadlineDays is the fixed payment target printed on invoices.
const invoiceDeadlineDays = 14

func invoiceVariant(inv *document.Invoice, comp *document.Company) variant {
	data := map[string]any{
		"number": inv.InvoiceNumber,
		"days":   invoiceDeadlineDays,
	}
	funcs := templateFuncs()

	v := variant{
		title:   tplTitleInvoice.Render(data, funcs),
		showVAT: comp.IsSubjectToVAT,
		kind:    "Rechnung",
	}
	switch {
	case inv.IsPaid && inv.PaidAt != nil:
		v.body = []string{tplPaidOn.Render(map[string]any{"paidOn": *inv.PaidAt}, funcs)}
	case inv.IsPaid:
		v.body = []string{tplPaid.Render(nil, funcs)}
	default:
		v.body = []string{tplInvoiceDeadline.Render(data, funcs)}
	}
	return v
}

func reminderVariant(inv *document.Invoice, comp *document.Company, cfg *document.ReminderConfig) variant {
	data := map[string]any{
		"number": inv.InvoiceNumber,
		"date":   inv.CreatedAt,
		"days":   cfg.DeadlineDays,
		"fee":    cfg.Mahngebuehr,
	}
	funcs := templateFuncs()

	v := variant{
		fee:     cfg.Mahngebuehr,
		showVAT: comp.IsSubjectToVAT,
	}
	switch cfg.Level {
	case document.LevelZahlungserinnerung:
		v.title = tplTitleLevel1.Render(data, funcs)
		v.kind = "Zahlungserinnerung"
		v.body = []string{
			tplSalutation.Render(nil, funcs),
			tplOverdue1.Render(data, funcs),
			tplRemind1.Render(data, funcs),
		}
		if cfg.Mahngebuehr > 0 {
			v.body = append(v.body, tplFee1.Render(data, funcs))
		}
	case document.LevelErsteMahnung:
		v.title = tplTitleLevel2.Render(data, funcs)
		v.kind = "Mahnung"
		v.body = []string{
			tplSalutation.Render(nil, funcs),
			tplOverdue2.Render(data, funcs),
			demandSentence(cfg, data, funcs),
		}
	case document.LevelZweiteMahnung:
		v.title = tplTitleLevel3.Render(data, funcs)
		v.kind = "Mahnung"
		v.body = []string{
			tplSalutation.Render(nil, funcs),
			tplOverdue3.Render(data, funcs),
			demandSentence(cfg, data, funcs),
			tplEscalate.Render(nil, funcs),
		}
	}
	return v
}

func demandSentence(cfg *document.ReminderConfig, data map[string]any, funcs map[string]binding.Func) string {
	if cfg.Mahngebuehr <= 0 {
		return tplDemandNoF.Render(data, funcs)
	}
	if cfg.Level == document.LevelZweiteMahnung {
		return tplDemand3.Render(data, funcs)
	}
	return tplDemand.Render(data, funcs)
}

// columnsFor selects the table column set. VAT-registered companies get the
// six-column layout with a MwSt. column; everyone else gets five columns.
func columnsFor(showVAT bool) []column {
	if showVAT {
		return []column{
			{"Pos.", 40},
			{"Beschreibung", 160},
			{"Menge", 60},
			{"Einzelpreis", 80},
			{"MwSt.", 60},
			{"Gesamt", 80},
		}
	}
	return []column{
		{"Pos.", 40},
		{"Beschreibung", 180},
		{"Menge", 60},
		{"Einzelpreis", 100},
		{"Gesamt", 100},
	}
}
