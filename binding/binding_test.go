package binding

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLiteralText(t *testing.T) {
	tpl, err := Parse("Vielen Dank für Ihren Auftrag!")
	require.NoError(t, err)
	assert.Equal(t, "Vielen Dank für Ihren Auftrag!", tpl.Render(nil, nil))
}

func TestRenderPlaceholder(t *testing.T) {
	tpl := MustParse("Rechnung Nr. ${number}")
	got := tpl.Render(map[string]any{"number": "R-2024-001"}, nil)
	assert.Equal(t, "Rechnung Nr. R-2024-001", got)
}

func TestRenderVerb(t *testing.T) {
	tpl := MustParse("Mahngebühr von ${fee|money}.")
	funcs := map[string]Func{
		"money": func(v any) string { return fmt.Sprintf("%.2f €", v) },
	}
	got := tpl.Render(map[string]any{"fee": 5.0}, funcs)
	assert.Equal(t, "Mahngebühr von 5.00 €.", got)
}

func TestRenderNestedPath(t *testing.T) {
	tpl := MustParse("${invoice.number} vom ${invoice.created}")
	data := map[string]any{
		"invoice": map[string]any{
			"number":  "R-1",
			"created": "15.03.2024",
		},
	}
	assert.Equal(t, "R-1 vom 15.03.2024", tpl.Render(data, nil))
}

func TestRenderMissingPathKeepsPlaceholder(t *testing.T) {
	tpl := MustParse("Betrag: ${fee|money}")
	got := tpl.Render(map[string]any{}, nil)
	assert.Equal(t, "Betrag: ${fee|money}", got,
		"unresolvable placeholders must stay visible")
}

func TestRenderUnknownVerbFallsBack(t *testing.T) {
	tpl := MustParse("${days} Tage")
	got := tpl.Render(map[string]any{"days": 14}, map[string]Func{})
	assert.Equal(t, "14 Tage", got)
}

func TestParseLeavesStrayTokensAsText(t *testing.T) {
	tpl, err := Parse("a } b | c.d")
	require.NoError(t, err)
	assert.Equal(t, "a } b | c.d", tpl.Render(nil, nil))
}

func TestParseUnterminatedPlaceholder(t *testing.T) {
	_, err := Parse("kaputt ${number")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse template"))
}
