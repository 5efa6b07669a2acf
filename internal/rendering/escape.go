package rendering

import (
	"strings"

	"github.com/jonathan/resume-generator/internal/types"
)

// Markup is text that is safe to place in a LaTeX document as-is.
// The only way to obtain Markup from free text is EscapeLaTeX.
type Markup string

// latexReplacements is applied in order. Braces come before the rules that
// emit "{}" so no replacement output is rewritten by a later rule.
// Backslash is not reserved.
var latexReplacements = []struct {
	old string
	new string
}{
	{"&", `\&`},
	{"%", `\%`},
	{"$", `\$`},
	{"#", `\#`},
	{"_", `\_`},
	{"{", `\{`},
	{"}", `\}`},
	{"~", `\textasciitilde{}`},
	{"^", `\^{}`},
}

// EscapeLaTeX escapes the reserved LaTeX characters & % $ # _ { } ~ ^ in text.
// It is not idempotent: escaping the result again escapes the inserted sequences.
func EscapeLaTeX(text types.FreeText) Markup {
	s := string(text)
	if s == "" {
		return ""
	}

	for _, r := range latexReplacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}

	return Markup(s)
}

// escapeAll escapes each entry, preserving order
func escapeAll(items []types.FreeText) []Markup {
	out := make([]Markup, len(items))
	for i, item := range items {
		out[i] = EscapeLaTeX(item)
	}
	return out
}
