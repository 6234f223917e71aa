package document

import "fmt"

// Validate checks the fields the layout engine depends on. It fails fast so
// generation never produces a partially drawn document.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return fmt.Errorf("invoice is nil")
	}
	if inv.InvoiceNumber == "" {
		return fmt.Errorf("invoice: missing invoice number")
	}
	if inv.CustomerName == "" {
		return fmt.Errorf("invoice %s: missing customer name", inv.InvoiceNumber)
	}
	if inv.CustomerZipCode == "" || inv.CustomerCity == "" {
		return fmt.Errorf("invoice %s: incomplete customer address", inv.InvoiceNumber)
	}
	if inv.CreatedAt.IsZero() {
		return fmt.Errorf("invoice %s: missing creation date", inv.InvoiceNumber)
	}
	for i, item := range inv.Items {
		if err := item.validate(); err != nil {
			return fmt.Errorf("invoice %s: item %d: %w", inv.InvoiceNumber, i+1, err)
		}
	}
	return nil
}

func (it *Item) validate() error {
	if it.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", it.Quantity)
	}
	if it.UnitPrice <= 0 {
		return fmt.Errorf("unit price must be positive, got %g", it.UnitPrice)
	}
	if it.TaxRate < 0 || it.TaxRate > 100 {
		return fmt.Errorf("tax rate must be within 0..100, got %g", it.TaxRate)
	}
	return nil
}

// Validate checks the company snapshot fields the engine renders.
func (c *Company) Validate() error {
	if c == nil {
		return fmt.Errorf("company is nil")
	}
	if c.Name == "" {
		return fmt.Errorf("company: missing name")
	}
	if !c.LegalForm.Valid() {
		return fmt.Errorf("company %s: unknown legal form %q", c.Name, c.LegalForm)
	}
	if c.Street == "" || c.ZipCode == "" || c.City == "" {
		return fmt.Errorf("company %s: incomplete address", c.Name)
	}
	return nil
}

// Validate checks the dunning parameters.
func (r *ReminderConfig) Validate() error {
	if r == nil {
		return fmt.Errorf("reminder config is nil")
	}
	if r.Level < LevelZahlungserinnerung || r.Level > LevelZweiteMahnung {
		return fmt.Errorf("reminder: level must be 1, 2 or 3, got %d", r.Level)
	}
	if r.Mahngebuehr < 0 {
		return fmt.Errorf("reminder: fee must not be negative, got %g", r.Mahngebuehr)
	}
	if r.DeadlineDays <= 0 {
		return fmt.Errorf("reminder: deadline days must be positive, got %d", r.DeadlineDays)
	}
	return nil
}
