package shopify

import (
	"strings"

	"golang.org/x/net/html"
)

// plainText strips markup from a body_html fragment. Entities are decoded
// and script/style content is dropped.
func plainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	var sb strings.Builder
	extractText(doc, &sb)
	return strings.TrimSpace(sb.String())
}

func extractText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb)
	}
}
