// ABOUTME: Caption derivation from paragraph text and img attributes
// ABOUTME: Fixed priority with a genericness filter applied to every candidate

package validation

import (
	"strings"
	"unicode/utf8"

	"comic-feed-engine/core/htmlimage"
)

// extractCaption derives at most one caption for the accepted image. The
// candidates are tried in fixed priority: the paragraph following the image
// in the source HTML, the img title attribute, then the img alt attribute.
// Each candidate must survive the genericness filter; the first survivor
// wins and a feed with no surviving candidate simply has no caption.
func (s *Service) extractCaption(img locatedImage, fields itemFields, feedName string) string {
	h := s.cfg.Heuristics

	// Structural paragraph: the nearest <p> after the image, accepted only
	// with a quote-or-emphasis signal and no transcript markers.
	paraInfo := htmlimage.FirstImage(fields.description)
	if paraInfo == nil || paraInfo.Paragraph == "" {
		paraInfo = htmlimage.FirstImage(fields.content)
	}
	if paraInfo != nil && paraInfo.Paragraph != "" {
		text := paraInfo.Paragraph
		n := utf8.RuneCountInString(text)
		if n > 0 && n <= h.CaptionMaxLen &&
			paraInfo.ParagraphEmphasis &&
			!h.TranscriptPattern.MatchString(text) &&
			!s.isGenericCaption(text) {
			return text
		}
	}

	if img.attrInfo == nil {
		return ""
	}

	// img title attribute, xkcd style
	if text := strings.TrimSpace(img.attrInfo.Title); text != "" {
		n := utf8.RuneCountInString(text)
		if n <= h.CaptionMaxLen && !s.isGenericCaption(text) {
			return text
		}
	}

	return s.captionFromAlt(strings.TrimSpace(img.attrInfo.Alt), fields.title, feedName)
}

// captionFromAlt applies the stricter alt-text gauntlet: transcripts,
// metadata echoes, brand words, and generic wording are all rejected.
func (s *Service) captionFromAlt(text, itemTitle, feedName string) string {
	if text == "" {
		return ""
	}

	h := s.cfg.Heuristics

	if h.AltRejectPattern.MatchString(text) {
		return ""
	}

	// just echoing the item title or feed name back
	lower := strings.ToLower(text)
	if lower == strings.ToLower(itemTitle) {
		return ""
	}
	if feedName != "" && lower == strings.ToLower(feedName) {
		return ""
	}

	// single brand word like "Bizarro"
	if h.BrandWordPattern.MatchString(text) {
		return ""
	}

	for _, word := range h.GenericAltWords {
		if strings.Contains(lower, word) {
			return ""
		}
	}

	if s.isGenericCaption(text) {
		return ""
	}

	if n := utf8.RuneCountInString(text); n > 0 && n <= h.AltMaxLen {
		return text
	}
	return ""
}

// isGenericCaption reports whether a candidate is date-stamp boilerplate
// like "Comic strip for 2026/02/04" or a bare date token.
func (s *Service) isGenericCaption(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return true
	}

	h := s.cfg.Heuristics

	for _, pattern := range h.GenericCaptionPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	for _, phrase := range h.GenericCaptionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, pattern := range h.DateOnlyPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	return false
}
