package catalog

import "strings"

// DecodeTagList decodes a stringified list of tags or skills.
//
// The accepted grammar is a comma-separated token sequence, optionally
// wrapped in square brackets, where each token may itself be wrapped in
// single or double quotes:
//
//	"['Python', 'Data Analysis']" -> ["Python", "Data Analysis"]
//	"Python, Data Analysis"       -> ["Python", "Data Analysis"]
//	"[]"                          -> nil
//
// Empty tokens are dropped. Token order is preserved; it matters for
// display truncation downstream.
func DecodeTagList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Strip one optional layer of brackets.
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}

	var tags []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		token = trimQuotes(token)
		token = strings.TrimSpace(token)
		if token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}

// trimQuotes removes one matching pair of single or double quotes.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
