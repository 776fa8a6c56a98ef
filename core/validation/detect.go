// ABOUTME: Feed format detection from the parsed XML document root
// ABOUTME: Classifies rss vs atom by root local name, ignoring namespace prefixes

package validation

import (
	"comic-feed-engine/core/domain"
	"comic-feed-engine/core/errors"
	"github.com/antchfx/xmlquery"
)

// rootElement returns the document's root element node, skipping the XML
// declaration and any leading comments.
func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// classifyRoot maps the root element to a feed type. Only the local name is
// inspected; a namespaced {ns}rss root still classifies as rss.
func classifyRoot(root *xmlquery.Node) (domain.FeedType, error) {
	switch root.Data {
	case "rss":
		return domain.FeedTypeRSS, nil
	case "feed":
		return domain.FeedTypeAtom, nil
	}

	tag := root.Data
	if root.Prefix != "" {
		tag = root.Prefix + ":" + root.Data
	}
	return "", &errors.UnknownFormatError{Tag: tag}
}

// childElement returns the first child element of n with the given local
// name, regardless of namespace.
func childElement(n *xmlquery.Node, local string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local {
			return c
		}
	}
	return nil
}
