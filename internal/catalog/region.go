package catalog

import "strings"

const globalRegion = "global"

// regionAliases maps a canonical region to every spelling that refers to it.
var regionAliases = map[string][]string{
	"middle east": {"me", "middle east", "gulf", "mena"},
	"europe":      {"eu", "europe", "europa"},
}

// NormalizeRegion lower-cases and trims a requested region. Empty means global.
func NormalizeRegion(region string) string {
	r := strings.ToLower(strings.TrimSpace(region))
	if r == "" {
		return globalRegion
	}
	return r
}

func regionTokens(cell string) []string {
	parts := strings.Split(cell, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func containsAny(tokens, candidates []string) bool {
	for _, t := range tokens {
		for _, c := range candidates {
			if t == c {
				return true
			}
		}
	}
	return false
}

// RegionMatches reports whether a row tagged with cell is visible to requested.
// An empty cell is region-agnostic and always matches.
func RegionMatches(cell, requested string) bool {
	tokens := regionTokens(cell)
	if len(tokens) == 0 {
		return true
	}
	if containsAny(tokens, []string{globalRegion}) {
		return true
	}
	want := NormalizeRegion(requested)
	if want == globalRegion {
		return true
	}
	for _, spellings := range regionAliases {
		if containsAny([]string{want}, spellings) {
			return containsAny(tokens, spellings)
		}
	}
	return containsAny(tokens, []string{want})
}
