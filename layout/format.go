package layout

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fakturo/druckwerk/binding"
)

var dePrinter = message.NewPrinter(language.German)

// formatMoney renders an amount in German notation, e.g. "1.234,56 €".
func formatMoney(v float64) string {
	return dePrinter.Sprintf("%.2f €", v)
}

// formatRate renders a tax rate percentage, dropping a trailing ",0".
func formatRate(rate float64) string {
	if rate == math.Trunc(rate) {
		return dePrinter.Sprintf("%.0f %%", rate)
	}
	return dePrinter.Sprintf("%.1f %%", rate)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// templateFuncs are the formatting verbs available to body-copy templates.
func templateFuncs() map[string]binding.Func {
	return map[string]binding.Func{
		"money": func(v any) string {
			if f, ok := v.(float64); ok {
				return formatMoney(f)
			}
			return fmt.Sprint(v)
		},
		"date": func(v any) string {
			if t, ok := v.(time.Time); ok {
				return formatDate(t)
			}
			return fmt.Sprint(v)
		},
	}
}
