package scaffold

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// adminLanguages are the back office languages every module ships. Their
// names are given in German, the back office default.
var adminLanguages = []string{"de", "en"}

type lang struct {
	abbr string
	name string
}

func adminLangs() []lang {
	namer := display.German.Languages()
	out := make([]lang, 0, len(adminLanguages))
	for _, abbr := range adminLanguages {
		out = append(out, lang{abbr: abbr, name: namer.Name(language.Make(abbr))})
	}
	return out
}

// shopLangs names each configured shop language in itself, as the storefront
// language switch shows it.
func shopLangs(abbrs []string) []lang {
	seen := make(map[string]bool)
	var out []lang
	for _, abbr := range abbrs {
		tag, err := language.Parse(abbr)
		if err != nil || seen[abbr] {
			continue
		}
		seen[abbr] = true
		out = append(out, lang{abbr: abbr, name: display.Self.Name(tag)})
	}
	return out
}
