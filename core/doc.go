// Package core contains the business logic of the comic feed validation
// engine. It is designed to be framework-agnostic and can be used
// independently of any infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ValidationResult, FailedFeedsReport)
// - validation: The feed validation pipeline and batch orchestration
// - htmlimage: First-image-and-following-paragraph finder for HTML fragments
// - config: Engine configuration and the heuristic keyword tables
// - errors: Custom error types, one per way a feed can fail
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Heuristic phrase lists and patterns are data, not scattered literals
//
// # Usage Example
//
//	import (
//	    "comic-feed-engine/core/config"
//	    "comic-feed-engine/core/interfaces"
//	    "comic-feed-engine/core/validation"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	service := validation.NewService(deps, config.DefaultValidationConfig())
//
//	// Validate feeds
//	valid, invalid := service.ValidateFeeds(ctx, []validation.FeedRef{
//	    {Name: "xkcd", URL: "https://xkcd.com/rss.xml"},
//	})
package core
