// Package render substitutes the fixed set of __TOKEN__ placeholders used by
// the scaffold templates. It is not a template engine: there are no loops,
// conditionals or nested scopes, and substitution is a single pass.
package render

import "strings"

// Token names a placeholder. Its marker in template text is "__" + name + "__".
type Token string

const (
	ID              Token = "ID"
	Version         Token = "VERSION"
	Title           Token = "TITLE"
	Description     Token = "DESCRIPTION"
	RootNamespace   Token = "ROOTNAMESPACE"
	ModuleNamespace Token = "MODULENAMESPACE"
	Vendor          Token = "VENDOR"
	Author          Token = "AUTHOR"
	Email           Token = "EMAIL"
	LangName        Token = "LANGNAME"
	LangAbbr        Token = "LANGABBR"
)

var tokens = []Token{
	ID, Version, Title, Description, RootNamespace, ModuleNamespace,
	Vendor, Author, Email, LangName, LangAbbr,
}

// Tokens returns the recognized placeholder set.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

// Marker returns the literal text that stands for tok in a template.
func Marker(tok Token) string {
	return "__" + string(tok) + "__"
}

// Values maps tokens to their substitution.
type Values map[Token]string

// With returns a copy of v with tok set to value.
func (v Values) With(tok Token, value string) Values {
	out := make(Values, len(v)+1)
	for k, val := range v {
		out[k] = val
	}
	out[tok] = value
	return out
}

// Render replaces every marker of a recognized token present in values.
// Replacement text is never rescanned, so a value containing a marker is
// emitted verbatim. Unknown markers are left untouched.
func Render(tmpl string, values Values) string {
	var pairs []string
	for _, tok := range tokens {
		if val, ok := values[tok]; ok {
			pairs = append(pairs, Marker(tok), val)
		}
	}
	if len(pairs) == 0 {
		return tmpl
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
