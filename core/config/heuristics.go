// ABOUTME: Named heuristic tables for promo classification and caption filtering
// ABOUTME: Keeps every phrase list and regex in one overridable structure

package config

import "regexp"

// Heuristics groups every keyword list and pattern used by the promo
// classifier and the caption extractor. The tables are plain data; matching
// logic lives in the validation service. Callers can swap individual tables
// to localize or tune the heuristics without code changes.
type Heuristics struct {
	// PromoImageMarkers are substrings of an image URL that identify a
	// generic promotional graphic rather than a strip
	PromoImageMarkers []string

	// PromoPhraseGroups reject an item when every phrase of any one group
	// appears in the description or summary text (case-insensitive)
	PromoPhraseGroups [][]string

	// GenericCaptionPatterns match whole caption candidates that are
	// date-stamp boilerplate ("comic strip for 2026/02/04")
	GenericCaptionPatterns []*regexp.Regexp

	// GenericCaptionPhrases reject caption candidates containing any of
	// these substrings
	GenericCaptionPhrases []string

	// DateOnlyPatterns match caption candidates that are purely a date token
	DateOnlyPatterns []*regexp.Regexp

	// TranscriptPattern identifies panel-by-panel transcript text that must
	// not be used as a caption
	TranscriptPattern *regexp.Regexp

	// AltRejectPattern is the stricter transcript check applied to img alt
	// text; it additionally rejects em-dashes
	AltRejectPattern *regexp.Regexp

	// BrandWordPattern matches a single capitalized word, a comic echoing
	// its own name into alt text
	BrandWordPattern *regexp.Regexp

	// GenericAltWords reject alt text containing any of these words
	GenericAltWords []string

	// CaptionMaxLen caps paragraph and title caption candidates (runes)
	CaptionMaxLen int

	// AltMaxLen caps alt-text caption candidates (runes)
	AltMaxLen int
}

// DefaultHeuristics returns the built-in heuristic tables.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		PromoImageMarkers: []string{
			"generic_fb",
			"social_fb_generic",
			"gocomicscmsassets",
		},
		PromoPhraseGroups: [][]string{
			{"explore the archive", "read extra content"},
		},
		GenericCaptionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^comic\s*(?:strip|panel)?\s*(?:for|from)?\s*\d{4}[-/\\]\d{2}[-/\\]\d{2}$`),
			regexp.MustCompile(`^comic\s*(?:strip|panel)?\s*(?:for|from)?\s*\w+\s+\d{1,2},\s*\d{4}$`),
			regexp.MustCompile(`^comic\s*(?:of|for)\s+the\s+day$`),
			regexp.MustCompile(`^daily\s+comic$`),
			regexp.MustCompile(`^today[^\w]*s?\s+comic$`),
			regexp.MustCompile(`^strip\s+for\s+\d{4}[-/\\]\d{2}[-/\\]\d{2}$`),
			regexp.MustCompile(`^for\s+\d{4}[-/\\]\d{2}[-/\\]\d{2}$`),
		},
		GenericCaptionPhrases: []string{
			"comic strip for",
			"comic for",
			"daily comic",
			"today's comic",
			"this week's comic",
			"strip for",
			"panel for",
		},
		DateOnlyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d{4}[-/\\]\d{2}[-/\\]\d{2}$`),
			regexp.MustCompile(`^\w+\s+\d{1,2},\s*\d{4}$`),
		},
		TranscriptPattern: regexp.MustCompile(`(?i)panel\s*\d+|^panel|narration|sfx|:`),
		AltRejectPattern:  regexp.MustCompile(`(?i)panel\s*\d+|^panel|narration|sfx|` + "—" + `|:`),
		BrandWordPattern:  regexp.MustCompile(`^[A-Z][a-z]+$`),
		GenericAltWords: []string{
			"comic",
			"cartoon",
			"image",
			"picture",
			"illustration",
		},
		CaptionMaxLen: 200,
		AltMaxLen:     140,
	}
}
