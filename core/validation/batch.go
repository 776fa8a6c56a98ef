// ABOUTME: Batch validation over an ordered name-to-URL mapping
// ABOUTME: Bounded worker pool with per-feed isolation and deterministic output order

package validation

import (
	"context"
	"sync"

	"comic-feed-engine/core/domain"
)

// FeedRef is one entry of the caller-supplied ordered mapping of display
// name to feed URL. Name uniqueness is assumed, not enforced.
type FeedRef struct {
	Name string
	URL  string
}

// ValidateFeeds validates every feed and partitions the results into valid
// and invalid lists. Feeds are processed by a bounded worker pool; one
// feed's failure never affects another's processing, and the partition
// follows the input order regardless of completion order, so the output is
// deterministic for a given input set.
func (s *Service) ValidateFeeds(ctx context.Context, feeds []FeedRef) (valid, invalid []domain.ValidationResult) {
	if len(feeds) == 0 {
		return nil, nil
	}

	// Each worker writes only its own slot, so the slice needs no lock.
	results := make([]domain.ValidationResult, len(feeds))
	semaphore := make(chan struct{}, s.cfg.MaxWorkers)
	var wg sync.WaitGroup

	for i, ref := range feeds {
		wg.Add(1)
		go func(i int, ref FeedRef) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = s.ValidateFeed(ctx, ref.Name, ref.URL)
		}(i, ref)
	}
	wg.Wait()

	for _, result := range results {
		if result.IsValid {
			valid = append(valid, result)
		} else {
			invalid = append(invalid, result)
		}
	}

	s.logInfo("Batch validation finished", map[string]interface{}{
		"total":   len(feeds),
		"valid":   len(valid),
		"invalid": len(invalid),
	})
	return valid, invalid
}
