// Package document defines the read-only input model consumed by the layout
// engine: invoices, line items, the issuing company snapshot and the dunning
// configuration. Nothing in this package is mutated after construction.
package document

import "time"

// DefaultCountry is suppressed in the recipient address block.
const DefaultCountry = "Deutschland"

// Invoice is the document to be rendered. Unit prices are gross, i.e. they
// include VAT when the company is VAT-registered; the engine derives net
// amounts at render time.
type Invoice struct {
	InvoiceNumber       string     `json:"invoiceNumber"`
	CustomerNumber      string     `json:"customerNumber,omitempty"`
	CustomerName        string     `json:"customerName"`
	CustomerStreet      string     `json:"customerStreet"`
	CustomerHouseNumber string     `json:"customerHouseNumber"`
	CustomerZipCode     string     `json:"customerZipCode"`
	CustomerCity        string     `json:"customerCity"`
	CustomerCountry     string     `json:"customerCountry,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	IsPaid              bool       `json:"isPaid"`
	PaidAt              *time.Time `json:"paidAt,omitempty"`
	Items               []Item     `json:"items"`
}

// Item is a single invoice position. TaxRate is a percentage; zero means
// not taxed (non-VAT company or zero-rated position).
type Item struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate,omitempty"`
}

// Company is the issuing company snapshot at document creation time.
// Exactly one of Steuernummer/UstID is guaranteed present by upstream
// validation; when both slip through, UstID wins in the rendered footer.
type Company struct {
	Name                  string    `json:"name"`
	LegalForm             LegalForm `json:"legalForm"`
	Street                string    `json:"street"`
	HouseNumber           string    `json:"houseNumber"`
	ZipCode               string    `json:"zipCode"`
	City                  string    `json:"city"`
	Country               string    `json:"country,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Email                 string    `json:"email,omitempty"`
	Bank                  string    `json:"bank,omitempty"`
	IBAN                  string    `json:"iban,omitempty"`
	BIC                   string    `json:"bic,omitempty"`
	IsSubjectToVAT        bool      `json:"isSubjectToVAT"`
	FirstTaxRate          float64   `json:"firstTaxRate,omitempty"`
	SecondTaxRate         float64   `json:"secondTaxRate,omitempty"`
	Steuernummer          string    `json:"steuernummer,omitempty"`
	UstID                 string    `json:"ustId,omitempty"`
	Handelsregisternummer string    `json:"handelsregisternummer,omitempty"`
	LogoPath              string    `json:"logoUrl,omitempty"`
}

// TaxID returns the identifier rendered in the footer, preferring the VAT ID.
func (c *Company) TaxID() (label, value string) {
	if c.UstID != "" {
		return "USt-IdNr.", c.UstID
	}
	if c.Steuernummer != "" {
		return "Steuernummer", c.Steuernummer
	}
	return "", ""
}

// ReminderLevel escalates from a friendly payment reminder to formal notices.
type ReminderLevel int

const (
	LevelZahlungserinnerung ReminderLevel = 1
	LevelErsteMahnung       ReminderLevel = 2
	LevelZweiteMahnung      ReminderLevel = 3
)

// ReminderConfig parameterizes a dunning notice for an unpaid invoice.
type ReminderConfig struct {
	Mahngebuehr  float64       `json:"mahngebuehr"`
	DeadlineDays int           `json:"deadlineDays"`
	Level        ReminderLevel `json:"level"`
}
