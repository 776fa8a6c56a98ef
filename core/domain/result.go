// ABOUTME: Validation result domain model for comic feed validation runs
// ABOUTME: Records the outcome of a single feed validation, immutable once built

package domain

import "net/url"

// FeedType identifies the syndication format of a validated feed.
type FeedType string

const (
	// FeedTypeRSS is an RSS 2.0 style feed with a channel/item structure.
	FeedTypeRSS FeedType = "rss"

	// FeedTypeAtom is an Atom feed with top-level entry elements.
	FeedTypeAtom FeedType = "atom"
)

// ImageSource records which structural path produced the accepted image URL.
type ImageSource string

const (
	// ImageSourceEnclosure means the image came from an RSS enclosure URL.
	ImageSourceEnclosure ImageSource = "enclosure"

	// ImageSourceDescription means the image was embedded in the RSS description HTML.
	ImageSourceDescription ImageSource = "description"

	// ImageSourceContentEncoded means the image was embedded in content:encoded HTML.
	ImageSourceContentEncoded ImageSource = "content_encoded"

	// ImageSourceSummary means the image was embedded in the Atom summary or
	// content HTML. Both Atom paths report this single source.
	ImageSourceSummary ImageSource = "summary"
)

// ValidationResult is the outcome of validating one candidate comic feed.
// Exactly one result is produced per feed per validation run. A valid result
// always carries a syntactically valid ImageURL together with its ImageSource
// and FeedType; an invalid result always carries ErrorKind and ErrorMessage
// and none of the content fields.
type ValidationResult struct {
	// URL is the feed URL that was validated
	URL string `json:"url"`

	// Name is the caller-supplied display label, used only for reporting
	Name string `json:"name,omitempty"`

	// IsValid reports whether the feed is a usable comic image source
	IsValid bool `json:"is_valid"`

	// ErrorKind names the error category when IsValid is false
	ErrorKind string `json:"error_kind,omitempty"`

	// ErrorMessage is the human-readable failure detail when IsValid is false
	ErrorMessage string `json:"error_message,omitempty"`

	// FeedType is set once format classification completed
	FeedType FeedType `json:"feed_type,omitempty"`

	// ComicTitle is the title of the selected item or entry
	ComicTitle string `json:"comic_title,omitempty"`

	// ImageURL is the accepted strip image URL, set only when IsValid is true
	ImageURL string `json:"image_url,omitempty"`

	// ImageSource records the structural path that produced ImageURL
	ImageSource ImageSource `json:"image_source,omitempty"`

	// Link is the item's canonical link, used by downstream rendering
	Link string `json:"link,omitempty"`

	// Caption is a short human-readable caption, absent when none survived
	// the genericness filter
	Caption string `json:"caption,omitempty"`
}

// IsValidImageURL reports whether s parses as a URL with both a scheme and a
// host. This is the structural validity gate applied to every candidate
// image URL before it can be accepted.
func IsValidImageURL(s string) bool {
	if s == "" {
		return false
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}
