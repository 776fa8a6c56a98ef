// ABOUTME: Failed feeds report assembly from the invalid partition
// ABOUTME: Serialization of the record is the reporting collaborator's concern

package validation

import (
	"time"

	"comic-feed-engine/core/domain"
)

// reportTimeLayout matches the timestamp format of the persisted report.
const reportTimeLayout = "2006-01-02 15:04:05"

// BuildFailedFeedsReport assembles the failed feeds report from the invalid
// partition of a validation run. Every entry is marked for investigation.
func BuildFailedFeedsReport(invalid []domain.ValidationResult, now time.Time) *domain.FailedFeedsReport {
	report := &domain.FailedFeedsReport{
		ReportDate:  now.Format(reportTimeLayout),
		TotalFailed: len(invalid),
		FailedFeeds: make([]domain.FailedFeed, 0, len(invalid)),
	}

	for _, result := range invalid {
		report.FailedFeeds = append(report.FailedFeeds, domain.FailedFeed{
			Name:     result.Name,
			URL:      result.URL,
			Error:    result.ErrorMessage,
			FeedType: string(result.FeedType),
			Status:   domain.FailedFeedStatus,
		})
	}

	return report
}
