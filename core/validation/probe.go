// ABOUTME: Accessibility prober detects hotlink protection on accepted image URLs
// ABOUTME: HEAD with feed Referer, one streamed GET retry, verdicts memoized per run

package validation

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"comic-feed-engine/core/errors"
)

const (
	probeCachePrefix = "probe:"
	probeVerdictOK   = "ok"
	probeCacheTTL    = 15 * time.Minute
)

// probeImage checks that imageURL is fetchable by a client presenting the
// feed itself as referrer. Verdicts are cached by image URL so a batch never
// probes the same CDN asset twice.
func (s *Service) probeImage(ctx context.Context, imageURL, feedURL string) error {
	if verdict, ok := s.cachedVerdict(ctx, imageURL); ok {
		if verdict == probeVerdictOK {
			return nil
		}
		status, _ := strconv.Atoi(verdict)
		return &errors.HotlinkProtectedError{ImageURL: imageURL, StatusCode: status}
	}

	err := s.probe(ctx, imageURL, feedURL)
	s.storeVerdict(ctx, imageURL, err)
	return err
}

func (s *Service) probe(ctx context.Context, imageURL, feedURL string) error {
	headers := map[string]string{"Referer": feedURL}

	if err := s.waitRate(ctx); err != nil {
		return s.probeTransportError(imageURL, err)
	}

	headCtx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Head(headCtx, imageURL, headers)
	if err != nil {
		return s.probeTransportError(imageURL, err)
	}
	status := resp.StatusCode()
	resp.Body().Close()

	if status == http.StatusForbidden {
		return &errors.HotlinkProtectedError{ImageURL: imageURL, StatusCode: status}
	}
	if status < 400 {
		return nil
	}

	// Some servers block HEAD outright; retry once with a GET and discard
	// the body unread.
	getCtx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	resp, err = s.deps.HTTPClient.Get(getCtx, imageURL, headers)
	if err != nil {
		return s.probeTransportError(imageURL, err)
	}
	status = resp.StatusCode()
	resp.Body().Close()

	if status >= 400 {
		return &errors.HotlinkProtectedError{ImageURL: imageURL, StatusCode: status}
	}
	return nil
}

// probeTransportError applies the probe policy to a transport-level failure.
// The default policy assumes an unprobeable image is accessible, preferring
// a false positive over a false negative; StrictProbe inverts that.
func (s *Service) probeTransportError(imageURL string, err error) error {
	if s.cfg.StrictProbe {
		return &errors.HotlinkProtectedError{ImageURL: imageURL, StatusCode: 0}
	}

	s.logWarn("Image probe failed, assuming accessible", map[string]interface{}{
		"image_url": imageURL,
		"error":     err.Error(),
	})
	return nil
}

func (s *Service) cachedVerdict(ctx context.Context, imageURL string) (string, bool) {
	if s.deps.Cache == nil {
		return "", false
	}

	data, err := s.deps.Cache.Get(ctx, probeCachePrefix+imageURL)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (s *Service) storeVerdict(ctx context.Context, imageURL string, probeErr error) {
	if s.deps.Cache == nil {
		return
	}

	verdict := probeVerdictOK
	if hotlink, ok := probeErr.(*errors.HotlinkProtectedError); ok {
		verdict = strconv.Itoa(hotlink.StatusCode)
	}

	_ = s.deps.Cache.Set(ctx, probeCachePrefix+imageURL, []byte(verdict), probeCacheTTL)
}
