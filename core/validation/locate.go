// ABOUTME: Image location over the resolved item fields in fixed priority order
// ABOUTME: Enclosure first for RSS, then embedded img tags; summary then content for Atom

package validation

import (
	"comic-feed-engine/core/domain"
	"comic-feed-engine/core/errors"
	"comic-feed-engine/core/htmlimage"
)

// locatedImage is an accepted image URL together with the structural path
// that produced it and the img attributes available for caption derivation.
type locatedImage struct {
	url      string
	source   domain.ImageSource
	attrInfo *htmlimage.ImageInfo
}

// locateImage applies the fixed source priority and stops at the first
// structurally valid image URL (non-empty scheme and host).
//
// RSS: enclosure url attribute, then the first img inside description, then
// inside content:encoded. Atom: first img inside summary, then content; both
// Atom paths report the summary source.
func locateImage(fields itemFields, feedType domain.FeedType) (locatedImage, error) {
	if feedType == domain.FeedTypeRSS {
		if domain.IsValidImageURL(fields.enclosureURL) {
			// The image comes from the enclosure, but caption material
			// still lives in the embedded HTML.
			attr := htmlimage.FirstImage(fields.content)
			if attr == nil {
				attr = htmlimage.FirstImage(fields.description)
			}
			return locatedImage{url: fields.enclosureURL, source: domain.ImageSourceEnclosure, attrInfo: attr}, nil
		}

		if info := htmlimage.FirstImage(fields.description); info != nil && domain.IsValidImageURL(info.Src) {
			return locatedImage{url: info.Src, source: domain.ImageSourceDescription, attrInfo: info}, nil
		}

		if info := htmlimage.FirstImage(fields.content); info != nil && domain.IsValidImageURL(info.Src) {
			return locatedImage{url: info.Src, source: domain.ImageSourceContentEncoded, attrInfo: info}, nil
		}

		return locatedImage{}, &errors.NoImageError{Sources: "enclosure, description, or content:encoded"}
	}

	if info := htmlimage.FirstImage(fields.description); info != nil && domain.IsValidImageURL(info.Src) {
		return locatedImage{url: info.Src, source: domain.ImageSourceSummary, attrInfo: info}, nil
	}

	if info := htmlimage.FirstImage(fields.content); info != nil && domain.IsValidImageURL(info.Src) {
		return locatedImage{url: info.Src, source: domain.ImageSourceSummary, attrInfo: info}, nil
	}

	return locatedImage{}, &errors.NoImageError{Sources: "summary or content"}
}
