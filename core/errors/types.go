// ABOUTME: Custom error types for the feed validation engine
// ABOUTME: Each type terminates a single feed's pipeline and maps to a result error kind

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a network failure, timeout, or non-2xx status while
// fetching the feed itself.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request failed for %s: status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents malformed XML in the feed body.
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("XML parsing failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownFormatError means the document root is neither rss nor feed.
type UnknownFormatError struct {
	Tag string
}

// Error implements the error interface
func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown feed type: %s", e.Tag)
}

// MissingChannelError means an RSS document has no channel element.
type MissingChannelError struct{}

// Error implements the error interface
func (e *MissingChannelError) Error() string {
	return "no channel element found in RSS"
}

// NoItemsError means the feed is structurally empty.
type NoItemsError struct {
	FeedType string
}

// Error implements the error interface
func (e *NoItemsError) Error() string {
	if e.FeedType == "atom" {
		return "no entries found in Atom feed"
	}
	return "no items found in RSS feed"
}

// GenericPromoError means the first item is a generic promotional
// placeholder rather than an actual strip.
type GenericPromoError struct{}

// Error implements the error interface
func (e *GenericPromoError) Error() string {
	return "feed contains only generic promotional content"
}

// NoImageError means no structurally valid image URL was resolvable from any
// source in priority order.
type NoImageError struct {
	Sources string
}

// Error implements the error interface
func (e *NoImageError) Error() string {
	return fmt.Sprintf("no valid image found in %s", e.Sources)
}

// HotlinkProtectedError means an image exists but is not fetchable with the
// feed URL as referrer.
type HotlinkProtectedError struct {
	ImageURL   string
	StatusCode int
}

// Error implements the error interface
func (e *HotlinkProtectedError) Error() string {
	return fmt.Sprintf("image has hotlink protection (%d) for %s", e.StatusCode, e.ImageURL)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsUnknownFormat checks if an error is an UnknownFormatError
func IsUnknownFormat(err error) bool {
	var target *UnknownFormatError
	return errors.As(err, &target)
}

// IsMissingChannel checks if an error is a MissingChannelError
func IsMissingChannel(err error) bool {
	var target *MissingChannelError
	return errors.As(err, &target)
}

// IsNoItems checks if an error is a NoItemsError
func IsNoItems(err error) bool {
	var target *NoItemsError
	return errors.As(err, &target)
}

// IsGenericPromo checks if an error is a GenericPromoError
func IsGenericPromo(err error) bool {
	var target *GenericPromoError
	return errors.As(err, &target)
}

// IsNoImage checks if an error is a NoImageError
func IsNoImage(err error) bool {
	var target *NoImageError
	return errors.As(err, &target)
}

// IsHotlinkProtected checks if an error is a HotlinkProtectedError
func IsHotlinkProtected(err error) bool {
	var target *HotlinkProtectedError
	return errors.As(err, &target)
}

// Kind maps a validation error to the stable kind name recorded on invalid
// results. Unrecognized errors map to UnknownError.
func Kind(err error) string {
	switch {
	case IsFetch(err):
		return "FetchError"
	case IsParse(err):
		return "ParseError"
	case IsUnknownFormat(err):
		return "UnknownFormatError"
	case IsMissingChannel(err):
		return "MissingChannelError"
	case IsNoItems(err):
		return "NoItemsError"
	case IsGenericPromo(err):
		return "GenericPromoError"
	case IsNoImage(err):
		return "NoImageError"
	case IsHotlinkProtected(err):
		return "HotlinkProtectedError"
	default:
		return "UnknownError"
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
