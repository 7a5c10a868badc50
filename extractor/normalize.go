package extractor

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes HTML markup from rendered comment text and returns
// whitespace-normalized plain text. Entities are decoded. Malformed markup
// degrades to best-effort text extraction; this never fails.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(tok.Text())
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
