package document

import "fmt"

// LegalForm is the registered business entity type. It decides whether the
// rendered company name carries a legal suffix and whether a commercial
// register number is expected.
type LegalForm string

const (
	Einzelunternehmer LegalForm = "EINZELUNTERNEHMER"
	Freiberufler      LegalForm = "FREIBERUFLER"
	Kleingewerbe      LegalForm = "KLEINGEWERBE"
	GbR               LegalForm = "GBR"
	GmbH              LegalForm = "GMBH"
	UG                LegalForm = "UG"
	AG                LegalForm = "AG"
	OHG               LegalForm = "OHG"
	KG                LegalForm = "KG"
	GmbHCoKG          LegalForm = "GMBH_CO_KG"
	KGaA              LegalForm = "KGAA"
	SE                LegalForm = "SE"
	EWIV              LegalForm = "EWIV"
)

// Suffix returns the display suffix for named legal forms. Sole-proprietor
// and freelancer forms render the bare company name. The switch is exhaustive
// over all declared forms so new forms fail loudly in Valid before ever
// reaching layout.
func (f LegalForm) Suffix() string {
	switch f {
	case Einzelunternehmer, Freiberufler, Kleingewerbe:
		return ""
	case GbR:
		return "GbR"
	case GmbH:
		return "GmbH"
	case UG:
		return "UG (haftungsbeschränkt)"
	case AG:
		return "AG"
	case OHG:
		return "OHG"
	case KG:
		return "KG"
	case GmbHCoKG:
		return "GmbH & Co. KG"
	case KGaA:
		return "KGaA"
	case SE:
		return "SE"
	case EWIV:
		return "EWIV"
	}
	return ""
}

// Valid reports whether f is one of the declared legal forms.
func (f LegalForm) Valid() bool {
	switch f {
	case Einzelunternehmer, Freiberufler, Kleingewerbe, GbR, GmbH, UG, AG,
		OHG, KG, GmbHCoKG, KGaA, SE, EWIV:
		return true
	}
	return false
}

// DisplayName renders the company name with its legal suffix when the form
// requires one.
func (c *Company) DisplayName() string {
	if suffix := c.LegalForm.Suffix(); suffix != "" {
		return fmt.Sprintf("%s %s", c.Name, suffix)
	}
	return c.Name
}
