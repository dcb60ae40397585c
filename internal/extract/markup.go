package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// resourceAttrs are the attribute names whose values name a resource
// URL. Bound attributes (":src") hold expressions, not literals, so they
// are intentionally not listed.
var resourceAttrs = map[string]bool{
	"src":    true,
	"href":   true,
	"poster": true,
}

// MarkupReferences scans a template section for attribute values that
// name a resource and returns the raw local references in document
// order. Tokenization is tolerant: malformed markup yields whatever
// references appear before the tokenizer gives up.
func MarkupReferences(content string) []string {
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	var refs []string
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return keepLocal(refs)
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			for _, attr := range token.Attr {
				if !resourceAttrs[attr.Key] {
					continue
				}
				if ref := StripQuery(strings.TrimSpace(attr.Val)); ref != "" {
					refs = append(refs, ref)
				}
			}
		}
	}
}
