// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - http/standard: Standard library HTTP client with GET and HEAD support
// - logger/logrus: Structured logger backed by logrus
//
// # HTTP Client
//
// The client carries the engine's identifying User-Agent and accepts
// per-request headers, which the prober uses to present the feed URL as
// referrer:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, "")
//	resp, err := client.Get(ctx, "https://example.com/feed.xml", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Cache
//
//	cache := memory.NewMemoryCache(15*time.Minute, 30*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # Logger
//
//	logger := logrus.NewLogrusLogger()
//	logger.Info("Validating feed", map[string]interface{}{
//	    "url": "https://example.com/feed.xml",
//	})
package infrastructure
