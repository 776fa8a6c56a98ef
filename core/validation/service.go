// ABOUTME: Validation service runs the single-feed comic validation pipeline
// ABOUTME: Fetch, detect, extract, classify, locate, probe, caption, in that order

package validation

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"comic-feed-engine/core/config"
	"comic-feed-engine/core/domain"
	"comic-feed-engine/core/errors"
	"comic-feed-engine/core/interfaces"
	"github.com/antchfx/xmlquery"
	"golang.org/x/time/rate"
)

// Service validates candidate comic feeds
type Service struct {
	deps    interfaces.Dependencies
	cfg     config.ValidationConfig
	limiter *rate.Limiter
}

// NewService creates a new validation service instance
func NewService(deps interfaces.Dependencies, cfg config.ValidationConfig) *Service {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Service{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
	}
}

// ValidateFeed validates a single RSS or Atom feed and returns its result.
// It never returns an error: every pipeline failure is converted into an
// invalid result carrying the error kind and message. Validity is
// all-or-nothing; an invalid result carries no content fields.
func (s *Service) ValidateFeed(ctx context.Context, name, feedURL string) domain.ValidationResult {
	result := domain.ValidationResult{URL: feedURL, Name: name}

	if err := s.validate(ctx, &result); err != nil {
		result.IsValid = false
		result.ErrorKind = errors.Kind(err)
		result.ErrorMessage = err.Error()
		result.ComicTitle = ""
		result.ImageURL = ""
		result.ImageSource = ""
		result.Link = ""
		result.Caption = ""

		s.logWarn("Feed validation failed", map[string]interface{}{
			"name":  name,
			"url":   feedURL,
			"kind":  result.ErrorKind,
			"error": result.ErrorMessage,
		})
		return result
	}

	s.logInfo("Feed validated", map[string]interface{}{
		"name":         name,
		"url":          feedURL,
		"image_source": string(result.ImageSource),
	})
	return result
}

// validate runs the pipeline, filling result as stages complete
func (s *Service) validate(ctx context.Context, result *domain.ValidationResult) error {
	body, err := s.fetchFeed(ctx, result.URL)
	if err != nil {
		return err
	}

	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return &errors.ParseError{URL: result.URL, Err: err}
	}

	root := rootElement(doc)
	if root == nil {
		return &errors.ParseError{URL: result.URL, Err: fmt.Errorf("document has no root element")}
	}

	feedType, err := classifyRoot(root)
	if err != nil {
		return err
	}
	result.FeedType = feedType

	fields, err := extractFirstItem(doc, body, feedType, result.URL)
	if err != nil {
		return err
	}

	if s.isGenericPromo(fields) {
		return &errors.GenericPromoError{}
	}

	img, err := locateImage(fields, feedType)
	if err != nil {
		return err
	}

	if err := s.probeImage(ctx, img.url, result.URL); err != nil {
		return err
	}

	result.IsValid = true
	result.ComicTitle = fields.title
	result.Link = fields.link
	result.ImageURL = img.url
	result.ImageSource = img.source
	result.Caption = s.extractCaption(img, fields, result.Name)
	return nil
}

// fetchFeed performs the single blocking GET for the feed document.
// No retries; any transport failure or non-2xx status is a FetchError.
func (s *Service) fetchFeed(ctx context.Context, feedURL string) ([]byte, error) {
	if err := s.waitRate(ctx); err != nil {
		return nil, &errors.FetchError{URL: feedURL, Err: err}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(fetchCtx, feedURL, nil)
	if err != nil {
		return nil, &errors.FetchError{URL: feedURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.FetchError{URL: feedURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.FetchError{URL: feedURL, Err: err}
	}

	return body, nil
}

// waitRate blocks until the shared request limiter admits another request
func (s *Service) waitRate(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
