// ABOUTME: Failed feeds report domain model for downstream persistence
// ABOUTME: Mirrors the configuration-file shape consumed by the reporting collaborator

package domain

// FailedFeedStatus is the triage status assigned to every failed feed entry.
const FailedFeedStatus = "needs_investigation"

// FailedFeed is one entry in the failed feeds report.
type FailedFeed struct {
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	Error    string `json:"error" yaml:"error"`
	FeedType string `json:"feed_type" yaml:"feed_type"`
	Status   string `json:"status" yaml:"status"`
}

// FailedFeedsReport summarizes the invalid partition of a validation run.
// The engine produces the record; serializing it into a persisted
// configuration file is the reporting collaborator's concern.
type FailedFeedsReport struct {
	ReportDate  string       `json:"report_date" yaml:"report_date"`
	TotalFailed int          `json:"total_failed" yaml:"total_failed"`
	FailedFeeds []FailedFeed `json:"failed_feeds" yaml:"failed_feeds"`
}
