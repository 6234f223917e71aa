// Package binding parses and renders the placeholder templates used for
// document body copy ("Bitte überweisen Sie ... innerhalb von ${days} Tagen").
// A template is literal text interleaved with ${path.to.value} placeholders;
// a placeholder may name a formatting verb, e.g. ${fee|money}.
package binding

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	templateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Open", Pattern: `\$\{`},
		{Name: "Close", Pattern: `\}`},
		{Name: "Pipe", Pattern: `\|`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Any", Pattern: `[\s\S]`},
	})

	templateParser = participle.MustBuild[Template](
		participle.Lexer(templateLexer),
	)
)

// Template is a parsed body-copy template.
type Template struct {
	Fragments []*Fragment `parser:"@@*"`
}

// Fragment is either a placeholder or a run of literal text. Outside a
// placeholder every token type is plain text, including stray '}' and '|'.
type Fragment struct {
	Placeholder *Placeholder `parser:"  @@"`
	Text        string       `parser:"| @(Ident | Dot | Pipe | Close | Any)+"`
}

// Placeholder references a dotted path into the render data, with an
// optional formatting verb after '|'.
type Placeholder struct {
	Path []string `parser:"Open @Ident ( Dot @Ident )*"`
	Verb string   `parser:"( Pipe @Ident )? Close"`
}

func (p *Placeholder) raw() string {
	var b strings.Builder
	b.WriteString("${")
	b.WriteString(strings.Join(p.Path, "."))
	if p.Verb != "" {
		b.WriteByte('|')
		b.WriteString(p.Verb)
	}
	b.WriteByte('}')
	return b.String()
}

// Func formats a resolved value for a placeholder verb.
type Func func(any) string

// Parse parses a template string.
func Parse(input string) (*Template, error) {
	tpl, err := templateParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("binding: parse template: %w", err)
	}
	return tpl, nil
}

// MustParse is Parse for package-level template literals.
func MustParse(input string) *Template {
	tpl, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Render substitutes placeholders from data. Unresolvable paths render as the
// original placeholder text so broken copy is visible instead of silently
// dropped. Unknown verbs fall back to fmt.Sprint.
func (t *Template) Render(data map[string]any, funcs map[string]Func) string {
	var b strings.Builder
	for _, frag := range t.Fragments {
		if frag.Placeholder == nil {
			b.WriteString(frag.Text)
			continue
		}
		val, ok := resolvePath(data, frag.Placeholder.Path)
		if !ok {
			b.WriteString(frag.Placeholder.raw())
			continue
		}
		if fn, ok := funcs[frag.Placeholder.Verb]; ok && frag.Placeholder.Verb != "" {
			b.WriteString(fn(val))
			continue
		}
		b.WriteString(fmt.Sprint(val))
	}
	return b.String()
}

func resolvePath(data map[string]any, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var current any = data
	for _, segment := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
