package uilens

import (
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// typographicFolder maps curly quotes, dashes and non-breaking spaces to
// their ASCII equivalents, so design copy and rendered copy compare equal
// regardless of which variant the renderer substituted.
var typographicFolder = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
)

// normalizeText folds a string for fuzzy comparison: Unicode NFKC
// normalization, typographic character folding, case folding and
// whitespace collapsing.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = typographicFolder.Replace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// textSimilarity scores two text contents in [0, 1]: 1.0 for a normalized
// exact match, 0.9 for a substring match, otherwise Levenshtein
// similarity over the normalized strings.
func textSimilarity(a, b string) float64 {
	na, nb := normalizeText(a), normalizeText(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}
	return levenshtein.Similarity(na, nb, nil)
}
