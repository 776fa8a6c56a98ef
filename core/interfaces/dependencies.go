// ABOUTME: Dependencies container provides dependency injection for the engine
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the validation engine
type Dependencies struct {
	// Cache provides probe verdict memoization; may be nil
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging; may be nil
	Logger Logger
}
