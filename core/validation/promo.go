// ABOUTME: Promo classifier rejects generic "read more" placeholder items
// ABOUTME: A dated item link always overrides every promo signal

package validation

import (
	"strings"
	"unicode"

	"comic-feed-engine/core/htmlimage"
)

// isGenericPromo reports whether the first item is a generic promotional
// placeholder rather than an actual strip. An item whose link ends in a
// segment containing a digit points at a specific dated strip and is never
// classified as promo.
func (s *Service) isGenericPromo(fields itemFields) bool {
	if linkHasDate(fields.link) {
		return false
	}

	h := s.cfg.Heuristics

	if info := htmlimage.FirstImage(fields.description); info != nil && info.Src != "" {
		srcLower := strings.ToLower(info.Src)
		for _, marker := range h.PromoImageMarkers {
			if strings.Contains(srcLower, marker) {
				return true
			}
		}
	}

	descLower := strings.ToLower(fields.description)
	for _, group := range h.PromoPhraseGroups {
		all := len(group) > 0
		for _, phrase := range group {
			if !strings.Contains(descLower, phrase) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	return false
}

// linkHasDate reports whether the last path segment of link contains a
// digit, a proxy for "points at a specific dated strip".
func linkHasDate(link string) bool {
	if link == "" {
		return false
	}

	segments := strings.Split(link, "/")
	last := segments[len(segments)-1]
	for _, r := range last {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
