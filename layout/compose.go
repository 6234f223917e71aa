package layout

import (
	"fmt"
	"strconv"

	"github.com/fakturo/druckwerk/document"
)

// BuildInvoice lays out an invoice document. The result is deterministic:
// the same inputs and metrics always produce an identical page list.
func BuildInvoice(inv *document.Invoice, comp *document.Company, opts BuildOptions) (*Result, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	if opts.Metrics == nil {
		return nil, fmt.Errorf("layout: font metrics are required")
	}
	return compose(inv, comp, invoiceVariant(inv, comp), opts)
}

// BuildReminder lays out a dunning notice for an unpaid invoice. The notice
// reuses the invoice's item table and adds the dunning fee to the amount due.
func BuildReminder(inv *document.Invoice, comp *document.Company, cfg *document.ReminderConfig, opts BuildOptions) (*Result, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if inv.IsPaid {
		return nil, fmt.Errorf("invoice %s: already paid, cannot issue a dunning notice", inv.InvoiceNumber)
	}
	if opts.Metrics == nil {
		return nil, fmt.Errorf("layout: font metrics are required")
	}
	return compose(inv, comp, reminderVariant(inv, comp, cfg), opts)
}

// builder composes one document. It wraps the page composer with the input
// data and the variant-specific copy.
type builder struct {
	*composer
	inv  *document.Invoice
	comp *document.Company
	v    variant
	cols []column
}

func compose(inv *document.Invoice, comp *document.Company, v variant, opts BuildOptions) (*Result, error) {
	b := &builder{
		composer: newComposer(opts.Metrics),
		inv:      inv,
		comp:     comp,
		v:        v,
		cols:     columnsFor(v.showVAT),
	}

	b.headerBand()
	b.addressBlock()
	b.titleLine()
	b.bodyCopy()
	totals := b.itemTable()
	b.totalsBlock(totals)
	b.closing()
	b.footerPass()

	return &Result{
		Pages: b.pages,
		Meta: DocumentMeta{
			Title:   v.title,
			Author:  comp.DisplayName(),
			Subject: fmt.Sprintf("%s %s", v.kind, inv.InvoiceNumber),
			Creator: "druckwerk",
		},
	}, nil
}

// headerBand draws the logo and the document metadata column. The band
// consumes a fixed height whether or not a logo is configured, so everything
// below it keeps its position.
func (b *builder) headerBand() {
	if b.comp.LogoPath != "" {
		b.drawImage(b.comp.LogoPath, MarginLeft, b.y, 100, 50)
	}

	type metaRow struct{ label, value string }
	rows := []metaRow{
		{"Rechnungs-Nr.:", b.inv.InvoiceNumber},
		{"Datum:", formatDate(b.inv.CreatedAt)},
	}
	if b.inv.CustomerNumber != "" {
		rows = append(rows, metaRow{"Kunden-Nr.:", b.inv.CustomerNumber})
	}
	if b.inv.IsPaid && b.inv.PaidAt != nil {
		rows = append(rows, metaRow{"Bezahlt am:", formatDate(*b.inv.PaidAt)})
	}

	y := b.y - metaFontSize
	for _, row := range rows {
		b.drawText(row.label, 400, y, FontRegular, metaFontSize)
		b.drawTextRight(row.value, MarginLeft+TableWidth, y, FontRegular, metaFontSize)
		y -= metaFontSize + rowPadding
	}

	b.y -= headerBandSize
}

// addressBlock draws the one-line sender above the recipient window address.
func (b *builder) addressBlock() {
	sender := fmt.Sprintf("%s · %s %s · %s %s",
		b.comp.DisplayName(), b.comp.Street, b.comp.HouseNumber, b.comp.ZipCode, b.comp.City)
	b.drawText(sender, MarginLeft, b.y, FontRegular, senderFontSize)
	b.y -= senderFontSize + 2*blockSpacing

	lines := []string{
		b.inv.CustomerName,
		fmt.Sprintf("%s %s", b.inv.CustomerStreet, b.inv.CustomerHouseNumber),
		fmt.Sprintf("%s %s", b.inv.CustomerZipCode, b.inv.CustomerCity),
	}
	if c := b.inv.CustomerCountry; c != "" && c != document.DefaultCountry {
		lines = append(lines, c)
	}
	lineHeight := bodyFontSize + DefaultLineGap
	b.y -= bodyFontSize
	for _, line := range lines {
		b.drawText(line, MarginLeft, b.y, FontRegular, bodyFontSize)
		b.y -= lineHeight
	}
	b.y -= 3 * blockSpacing
}

func (b *builder) titleLine() {
	b.drawText(b.v.title, MarginLeft, b.y, FontBold, titleFontSize)
	b.y -= titleFontSize + 2*blockSpacing
}

// bodyCopy wraps each variant sentence against the full table width.
func (b *builder) bodyCopy() {
	for _, sentence := range b.v.body {
		need := MeasureWrappedHeight(sentence, TableWidth, FontRegular, bodyFontSize, DefaultLineGap, b.metrics)
		b.ensureSpace(need)
		h := b.drawWrappedText(sentence, MarginLeft, b.y, TableWidth, FontRegular, bodyFontSize, DefaultLineGap)
		b.y -= h
	}
	b.y -= 2 * blockSpacing
}

// tableHeader draws the bold column labels with a rule underneath. It runs
// once at table start and again after every mid-table page break.
func (b *builder) tableHeader() {
	x := float64(MarginLeft)
	for _, col := range b.cols {
		b.drawText(col.label, x, b.y, FontBold, headerFontSize)
		x += col.width
	}
	b.drawLine(MarginLeft, b.y-headerRuleDrop, MarginLeft+TableWidth, b.y-headerRuleDrop, 0.8)
	b.y -= tableHeaderDrop
}

// cellInset keeps right-aligned amounts clear of the following column.
const cellInset = 8.0

// itemTable draws one row per item and folds the amounts into the running
// totals. A row is measured before it is drawn; when it would not fit, the
// table breaks to a fresh page and the header is repeated. Rows themselves
// never split across pages.
func (b *builder) itemTable() *taxTotals {
	b.ensureSpace(tableHeaderDrop + bodyFontSize + rowPadding)
	b.tableHeader()

	totals := &taxTotals{}
	descWidth := b.cols[1].width - 2*cellInset
	for i, item := range b.inv.Items {
		amounts := totals.add(item)

		required := MeasureWrappedHeight(item.Description, descWidth, FontRegular, bodyFontSize, DefaultLineGap, b.metrics) + rowPadding
		if b.ensureSpace(required) {
			b.tableHeader()
		}

		x := float64(MarginLeft)
		b.drawText(fmt.Sprintf("%d.", i+1), x, b.y, FontRegular, bodyFontSize)
		x += b.cols[0].width
		b.drawWrappedText(item.Description, x, b.y, descWidth, FontRegular, bodyFontSize, DefaultLineGap)
		x += b.cols[1].width
		b.drawText(strconv.Itoa(item.Quantity), x, b.y, FontRegular, bodyFontSize)
		x += b.cols[2].width
		b.drawTextRight(formatMoney(item.UnitPrice), x+b.cols[3].width-cellInset, b.y, FontRegular, bodyFontSize)
		x += b.cols[3].width
		if b.v.showVAT {
			b.drawText(formatRate(item.TaxRate), x, b.y, FontRegular, bodyFontSize)
			x += b.cols[4].width
		}
		last := b.cols[len(b.cols)-1]
		b.drawTextRight(formatMoney(amounts.lineGross), x+last.width, b.y, FontRegular, bodyFontSize)

		b.y -= required
	}
	return totals
}

// totalsBlock renders the sums under the table. The block is atomic: its full
// height is reserved up front so it never splits across a page break. VAT
// rates appear in the order they first occurred in the item list.
func (b *builder) totalsBlock(t *taxTotals) {
	type totalRow struct {
		label string
		value string
		style FontStyle
	}
	var rows []totalRow
	if b.v.showVAT {
		rows = append(rows, totalRow{"Zwischensumme (netto):", formatMoney(t.net), FontRegular})
		for _, r := range t.rates {
			rows = append(rows, totalRow{fmt.Sprintf("MwSt. %s:", formatRate(r.rate)), formatMoney(r.amount), FontRegular})
		}
	}
	if b.v.fee > 0 {
		rows = append(rows, totalRow{"Gesamtbetrag:", formatMoney(t.gross), FontRegular})
		rows = append(rows, totalRow{"Mahngebühr:", formatMoney(b.v.fee), FontRegular})
		rows = append(rows, totalRow{"Zu zahlender Betrag:", formatMoney(t.gross + b.v.fee), FontBold})
	} else {
		rows = append(rows, totalRow{"Gesamtbetrag:", formatMoney(t.gross), FontBold})
	}

	lineHeight := totalsFontSize + rowPadding
	height := blockSpacing + float64(len(rows)+1)*lineHeight
	var notice string
	if !b.v.showVAT {
		notice = "Gemäß § 19 UStG wird keine Umsatzsteuer berechnet."
		height += blockSpacing + MeasureWrappedHeight(notice, TableWidth, FontRegular, noticeFontSize, DefaultLineGap, b.metrics)
	}
	b.ensureSpace(height)

	labelX := 330.0
	b.y -= blockSpacing
	b.drawLine(labelX, b.y, MarginLeft+TableWidth, b.y, 0.5)
	b.y -= lineHeight
	for _, row := range rows {
		b.drawText(row.label, labelX, b.y, row.style, totalsFontSize)
		b.drawTextRight(row.value, MarginLeft+TableWidth, b.y, row.style, totalsFontSize)
		b.y -= lineHeight
	}
	if notice != "" {
		b.y -= blockSpacing
		h := b.drawWrappedText(notice, MarginLeft, b.y, TableWidth, FontRegular, noticeFontSize, DefaultLineGap)
		b.y -= h
	}
}

func (b *builder) closing() {
	need := bodyFontSize + 2*blockSpacing
	b.ensureSpace(need)
	b.y -= 2 * blockSpacing
	b.drawText(tplClosing.Render(nil, nil), MarginLeft, b.y, FontRegular, bodyFontSize)
	b.y -= bodyFontSize
}

// footerPass runs after composition, when the page count is final. It stamps
// the three-column company footer and the "Seite i / N" counter onto every
// page inside the reserved footer zone.
func (b *builder) footerPass() {
	left := []string{
		b.comp.DisplayName(),
		fmt.Sprintf("%s %s", b.comp.Street, b.comp.HouseNumber),
		fmt.Sprintf("%s %s", b.comp.ZipCode, b.comp.City),
	}

	var middle []string
	if b.comp.Phone != "" {
		middle = append(middle, fmt.Sprintf("Tel.: %s", b.comp.Phone))
	}
	if b.comp.Email != "" {
		middle = append(middle, fmt.Sprintf("E-Mail: %s", b.comp.Email))
	}
	if label, value := b.comp.TaxID(); label != "" {
		middle = append(middle, fmt.Sprintf("%s: %s", label, value))
	}
	if b.comp.Handelsregisternummer != "" {
		middle = append(middle, b.comp.Handelsregisternummer)
	}

	var right []string
	if b.comp.Bank != "" && b.comp.IBAN != "" && b.comp.BIC != "" {
		right = []string{
			b.comp.Bank,
			fmt.Sprintf("IBAN: %s", b.comp.IBAN),
			fmt.Sprintf("BIC: %s", b.comp.BIC),
		}
	}

	lineHeight := smallFontSize + DefaultLineGap
	total := len(b.pages)
	for i, page := range b.pages {
		b.drawLineOn(page, MarginLeft, BottomMargin-10, MarginLeft+TableWidth, BottomMargin-10, 0.5)

		columns := []struct {
			x     float64
			lines []string
		}{{50, left}, {230, middle}, {400, right}}
		for _, col := range columns {
			y := BottomMargin - 10 - 2*blockSpacing - smallFontSize
			for _, line := range col.lines {
				b.drawTextOn(page, line, col.x, y, FontRegular, smallFontSize)
				y -= lineHeight
			}
		}

		counter := fmt.Sprintf("Seite %d / %d", i+1, total)
		w := b.metrics.TextWidth(counter, FontRegular, smallFontSize)
		b.drawTextOn(page, counter, MarginLeft+TableWidth-w, 20, FontRegular, smallFontSize)
	}
}
