package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sanitize removes script elements, inline event handlers and javascript: URLs.
// A full document is rebuilt from its parse tree. Anything else is filtered token by token,
// so fragments keep their exact markup whatever element they would belong to.
func Sanitize(markup string) (string, error) {
	if isDocument(markup) {
		return sanitizeDocument(markup)
	}
	return sanitizeFragment(markup)
}

func sanitizeDocument(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	doc.Find("script").Remove()
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			node.Attr = safeAttributes(node.Attr)
		}
	})
	return doc.Html()
}

func sanitizeFragment(markup string) (string, error) {
	var (
		b        strings.Builder
		inScript bool
	)
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("parsing markup: %w", err)
			}
			return strings.TrimSpace(b.String()), nil
		}
		// Raw must be copied before Token, which lowercases names in place.
		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Script {
				inScript = true
				continue
			}
			if inScript {
				continue
			}
			n := len(tok.Attr)
			if tok.Attr = safeAttributes(tok.Attr); len(tok.Attr) == n {
				b.WriteString(raw)
			} else {
				b.WriteString(tok.String())
			}
		case html.EndTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Script {
				inScript = false
				continue
			}
			if !inScript {
				b.WriteString(raw)
			}
		default:
			if !inScript {
				b.WriteString(raw)
			}
		}
	}
}

func safeAttributes(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, attr := range attrs {
		if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
			continue
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

func isDocument(markup string) bool {
	lower := strings.ToLower(markup)
	return strings.Contains(lower, "<html") || strings.Contains(lower, "<!doctype")
}
