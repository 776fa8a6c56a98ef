// ABOUTME: First item extraction for RSS and Atom feeds
// ABOUTME: Structural checks via xmlquery, field resolution via gofeed

package validation

import (
	"bytes"
	"strings"

	"comic-feed-engine/core/domain"
	"comic-feed-engine/core/errors"
	"github.com/antchfx/xmlquery"
	"github.com/mmcdole/gofeed"
)

// untitledDefault is used when the first item carries no title.
const untitledDefault = "Untitled"

// itemFields holds the resolved fields of the feed's first item or entry.
// description carries the RSS description or Atom summary, content carries
// content:encoded or the Atom content, both as raw HTML fragments.
type itemFields struct {
	title        string
	link         string
	description  string
	content      string
	enclosureURL string
}

// extractFirstItem validates the feed's structure and resolves the fields of
// its first item. The structural checks distinguish a missing channel from
// an empty feed; gofeed then resolves titles, links, and the namespaced
// content fields (content:encoded with or without its module prefix, Atom
// elements with or without the Atom namespace).
func extractFirstItem(doc *xmlquery.Node, body []byte, feedType domain.FeedType, feedURL string) (itemFields, error) {
	root := rootElement(doc)

	switch feedType {
	case domain.FeedTypeRSS:
		channel := childElement(root, "channel")
		if channel == nil {
			return itemFields{}, &errors.MissingChannelError{}
		}
		if childElement(channel, "item") == nil {
			return itemFields{}, &errors.NoItemsError{FeedType: "rss"}
		}
	case domain.FeedTypeAtom:
		if childElement(root, "entry") == nil {
			return itemFields{}, &errors.NoItemsError{FeedType: "atom"}
		}
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return itemFields{}, &errors.ParseError{URL: feedURL, Err: err}
	}
	if len(parsed.Items) == 0 {
		return itemFields{}, &errors.NoItemsError{FeedType: string(feedType)}
	}

	item := parsed.Items[0]

	fields := itemFields{
		title:       strings.TrimSpace(item.Title),
		link:        item.Link,
		description: item.Description,
		content:     item.Content,
	}
	if fields.title == "" {
		fields.title = untitledDefault
	}

	if feedType == domain.FeedTypeRSS && len(item.Enclosures) > 0 {
		fields.enclosureURL = item.Enclosures[0].URL
	}

	return fields, nil
}
