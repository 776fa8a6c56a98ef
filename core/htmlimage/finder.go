// ABOUTME: First-image finder for HTML fragments embedded in feed items
// ABOUTME: Captures img attributes and the nearest following paragraph for caption use

package htmlimage

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ImageInfo describes the first <img> tag of an HTML fragment together with
// the caption material surrounding it.
type ImageInfo struct {
	// Src is the img src attribute, possibly empty
	Src string

	// Title is the img title attribute (xkcd-style hover captions)
	Title string

	// Alt is the img alt attribute
	Alt string

	// Paragraph is the text of the nearest <p> following the image in
	// document order, trimmed; empty when there is none
	Paragraph string

	// ParagraphEmphasis reports whether the paragraph carries a
	// quote-or-emphasis signal: italic styling, an i/em descendant, or
	// quotation marks in its text
	ParagraphEmphasis bool
}

// FirstImage parses an HTML fragment and returns information about its first
// <img> tag. It returns nil when the fragment contains no image. The
// fragment does not need to be a complete document.
func FirstImage(fragment string) *ImageInfo {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	sel := doc.Find("img").First()
	if sel.Length() == 0 {
		return nil
	}

	info := &ImageInfo{}
	info.Src, _ = sel.Attr("src")
	info.Title, _ = sel.Attr("title")
	info.Alt, _ = sel.Attr("alt")

	if p := followingParagraph(sel.Get(0)); p != nil {
		text := strings.TrimSpace(nodeText(p))
		info.Paragraph = text
		info.ParagraphEmphasis = hasEmphasis(p, text)
	}

	return info
}

// followingParagraph walks the document in order starting after the image
// node and returns the first p element encountered.
func followingParagraph(img *html.Node) *html.Node {
	for n := nextInDocument(img); n != nil; n = nextInDocument(n) {
		if n.Type == html.ElementNode && n.Data == "p" {
			return n
		}
	}
	return nil
}

// nextInDocument returns the document-order successor of n.
func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// nodeText collects the concatenated text content of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// hasEmphasis reports the quote-or-emphasis signal for a paragraph node.
func hasEmphasis(p *html.Node, text string) bool {
	for _, attr := range p.Attr {
		if attr.Key == "style" && strings.Contains(attr.Val, "italic") {
			return true
		}
	}

	var hasItalicChild func(*html.Node) bool
	hasItalicChild = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "i" || c.Data == "em") {
				return true
			}
			if hasItalicChild(c) {
				return true
			}
		}
		return false
	}
	if hasItalicChild(p) {
		return true
	}

	return strings.Contains(text, `"`) || strings.Contains(text, "“")
}
