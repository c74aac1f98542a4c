package match

import "strings"

// normalizeIdentifier strips the separators that course codes are written
// with ("15-112", "15 112", "15112" all normalize the same) and lowercases.
func normalizeIdentifier(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}

// KeywordScore scores how strongly the query names the course identifier.
// An exact match after normalization scores 1.0, a substring containment in
// either direction scores 0.5, anything else 0.
func KeywordScore(query, code string) float32 {
	q := normalizeIdentifier(query)
	c := normalizeIdentifier(code)
	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1.0
	}
	if strings.Contains(c, q) || strings.Contains(q, c) {
		return 0.5
	}
	return 0
}
