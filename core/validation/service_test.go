package validation

import (
	"context"
	"errors"
	"testing"

	"comic-feed-engine/core/config"
	"comic-feed-engine/core/domain"
	"comic-feed-engine/core/interfaces"
)

const rssEnclosureFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Comic</title>
    <item>
      <title>Strip</title>
      <link>https://example.com/2024/05/01/strip</link>
      <enclosure url="https://cdn.example/a.png" type="image/png" length="1234"/>
      <description></description>
    </item>
  </channel>
</rss>`

const atomSummaryFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Comic</title>
  <entry>
    <title>Entry</title>
    <link href="https://example.com/2024/05/01"/>
    <summary type="html">&lt;img src="https://cdn.example/b.png" title="Comic strip for 2024/05/01"&gt;</summary>
  </entry>
</feed>`

const rssEmptyChannelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Empty Comic</title>
  </channel>
</rss>`

func newTestService(client interfaces.HTTPClient, opts ...config.ValidationOption) *Service {
	deps := interfaces.Dependencies{HTTPClient: client}
	return NewService(deps, config.NewValidationConfig(opts...))
}

func TestNewService(t *testing.T) {
	service := newTestService(&mockHTTPClient{})

	if service == nil {
		t.Fatal("NewService returned nil")
	}
}

func TestValidateFeed_RSSEnclosure(t *testing.T) {
	service := newTestService(feedClient(rssEnclosureFeed, 200))

	result := service.ValidateFeed(context.Background(), "example", "https://example.com/rss")

	if !result.IsValid {
		t.Fatalf("expected valid result, got error %s: %s", result.ErrorKind, result.ErrorMessage)
	}
	if result.FeedType != domain.FeedTypeRSS {
		t.Errorf("FeedType = %q, want rss", result.FeedType)
	}
	if result.ImageURL != "https://cdn.example/a.png" {
		t.Errorf("ImageURL = %q, want enclosure URL", result.ImageURL)
	}
	if result.ImageSource != domain.ImageSourceEnclosure {
		t.Errorf("ImageSource = %q, want enclosure", result.ImageSource)
	}
	if result.ComicTitle != "Strip" {
		t.Errorf("ComicTitle = %q, want Strip", result.ComicTitle)
	}
	if result.Link != "https://example.com/2024/05/01/strip" {
		t.Errorf("Link = %q", result.Link)
	}
	if result.Caption != "" {
		t.Errorf("Caption = %q, want absent", result.Caption)
	}
}

func TestValidateFeed_AtomSummaryImage(t *testing.T) {
	service := newTestService(feedClient(atomSummaryFeed, 200))

	result := service.ValidateFeed(context.Background(), "example", "https://example.com/atom")

	if !result.IsValid {
		t.Fatalf("expected valid result, got error %s: %s", result.ErrorKind, result.ErrorMessage)
	}
	if result.FeedType != domain.FeedTypeAtom {
		t.Errorf("FeedType = %q, want atom", result.FeedType)
	}
	if result.ImageURL != "https://cdn.example/b.png" {
		t.Errorf("ImageURL = %q", result.ImageURL)
	}
	if result.ImageSource != domain.ImageSourceSummary {
		t.Errorf("ImageSource = %q, want summary", result.ImageSource)
	}
	// img title is date boilerplate, so no caption survives
	if result.Caption != "" {
		t.Errorf("Caption = %q, want absent", result.Caption)
	}
}

func TestValidateFeed_RSSNoItems(t *testing.T) {
	service := newTestService(feedClient(rssEmptyChannelFeed, 200))

	result := service.ValidateFeed(context.Background(), "empty", "https://example.com/rss")

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if result.ErrorKind != "NoItemsError" {
		t.Errorf("ErrorKind = %q, want NoItemsError", result.ErrorKind)
	}
	if result.FeedType != domain.FeedTypeRSS {
		t.Errorf("FeedType = %q, want rss", result.FeedType)
	}
}

func TestValidateFeed_FetchTransportError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := newTestService(client)

	result := service.ValidateFeed(context.Background(), "down", "https://example.com/rss")

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if result.ErrorKind != "FetchError" {
		t.Errorf("ErrorKind = %q, want FetchError", result.ErrorKind)
	}
}

func TestValidateFeed_FetchNon2xx(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404}, nil
		},
	}
	service := newTestService(client)

	result := service.ValidateFeed(context.Background(), "gone", "https://example.com/rss")

	if result.ErrorKind != "FetchError" {
		t.Errorf("ErrorKind = %q, want FetchError", result.ErrorKind)
	}
}

func TestValidateFeed_MalformedXML(t *testing.T) {
	service := newTestService(feedClient("this is not xml at all", 200))

	result := service.ValidateFeed(context.Background(), "bad", "https://example.com/rss")

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if result.ErrorKind != "ParseError" {
		t.Errorf("ErrorKind = %q, want ParseError", result.ErrorKind)
	}
}

func TestValidateFeed_UnknownFormat(t *testing.T) {
	service := newTestService(feedClient("<html><body>not a feed</body></html>", 200))

	result := service.ValidateFeed(context.Background(), "web", "https://example.com/page")

	if result.ErrorKind != "UnknownFormatError" {
		t.Errorf("ErrorKind = %q, want UnknownFormatError", result.ErrorKind)
	}
	if result.FeedType != "" {
		t.Errorf("FeedType = %q, want unset", result.FeedType)
	}
}

func TestValidateFeed_MissingChannel(t *testing.T) {
	service := newTestService(feedClient(`<rss version="2.0"></rss>`, 200))

	result := service.ValidateFeed(context.Background(), "hollow", "https://example.com/rss")

	if result.ErrorKind != "MissingChannelError" {
		t.Errorf("ErrorKind = %q, want MissingChannelError", result.ErrorKind)
	}
}

func TestValidateFeed_AtomNoEntries(t *testing.T) {
	feed := `<feed xmlns="http://www.w3.org/2005/Atom"><title>quiet</title></feed>`
	service := newTestService(feedClient(feed, 200))

	result := service.ValidateFeed(context.Background(), "quiet", "https://example.com/atom")

	if result.ErrorKind != "NoItemsError" {
		t.Errorf("ErrorKind = %q, want NoItemsError", result.ErrorKind)
	}
	if result.FeedType != domain.FeedTypeAtom {
		t.Errorf("FeedType = %q, want atom", result.FeedType)
	}
}

func TestValidateFeed_NoImage(t *testing.T) {
	feed := `<rss version="2.0"><channel><item>
		<title>Plain</title>
		<link>https://example.com/2024/05/01</link>
		<description>Just text, no markup.</description>
	</item></channel></rss>`
	service := newTestService(feedClient(feed, 200))

	result := service.ValidateFeed(context.Background(), "plain", "https://example.com/rss")

	if result.ErrorKind != "NoImageError" {
		t.Errorf("ErrorKind = %q, want NoImageError", result.ErrorKind)
	}
	if result.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", result.ImageURL)
	}
}

func TestValidateFeed_ImagePriorityEnclosureWins(t *testing.T) {
	feed := `<rss version="2.0"><channel><item>
		<title>Strip</title>
		<link>https://example.com/2024/05/01</link>
		<enclosure url="https://cdn.example/enclosure.png" type="image/png"/>
		<description>&lt;img src="https://cdn.example/other.png"&gt;</description>
	</item></channel></rss>`
	service := newTestService(feedClient(feed, 200))

	result := service.ValidateFeed(context.Background(), "dual", "https://example.com/rss")

	if !result.IsValid {
		t.Fatalf("expected valid result, got %s", result.ErrorMessage)
	}
	if result.ImageURL != "https://cdn.example/enclosure.png" {
		t.Errorf("ImageURL = %q, want enclosure URL", result.ImageURL)
	}
	if result.ImageSource != domain.ImageSourceEnclosure {
		t.Errorf("ImageSource = %q, want enclosure", result.ImageSource)
	}
}

func TestValidateFeed_ContentEncodedFallback(t *testing.T) {
	feed := `<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
	<channel><item>
		<title>Strip</title>
		<link>https://example.com/2024/05/01</link>
		<description>Nothing here.</description>
		<content:encoded>&lt;img src="https://cdn.example/encoded.png"&gt;</content:encoded>
	</item></channel></rss>`
	service := newTestService(feedClient(feed, 200))

	result := service.ValidateFeed(context.Background(), "wp", "https://example.com/rss")

	if !result.IsValid {
		t.Fatalf("expected valid result, got %s", result.ErrorMessage)
	}
	if result.ImageSource != domain.ImageSourceContentEncoded {
		t.Errorf("ImageSource = %q, want content_encoded", result.ImageSource)
	}
	if result.ImageURL != "https://cdn.example/encoded.png" {
		t.Errorf("ImageURL = %q", result.ImageURL)
	}
}

func TestValidateFeed_StructuralParagraphCaption(t *testing.T) {
	feed := `<rss version="2.0"><channel><item>
		<title>Strip</title>
		<link>https://example.com/2024/05/01</link>
		<description>&lt;img src="https://cdn.example/c.png"&gt;&lt;p&gt;&lt;em&gt;He muttered, "not again."&lt;/em&gt;&lt;/p&gt;</description>
	</item></channel></rss>`
	service := newTestService(feedClient(feed, 200))

	result := service.ValidateFeed(context.Background(), "farside", "https://example.com/rss")

	if !result.IsValid {
		t.Fatalf("expected valid result, got %s", result.ErrorMessage)
	}
	if result.Caption != `He muttered, "not again."` {
		t.Errorf("Caption = %q", result.Caption)
	}
}

func TestValidateFeed_InvalidResultCarriesNoContentFields(t *testing.T) {
	service := newTestService(feedClient(rssEnclosureFeed, 403))

	result := service.ValidateFeed(context.Background(), "blocked", "https://example.com/rss")

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if result.ErrorKind != "HotlinkProtectedError" {
		t.Errorf("ErrorKind = %q, want HotlinkProtectedError", result.ErrorKind)
	}
	if result.ComicTitle != "" || result.ImageURL != "" || result.Caption != "" || result.Link != "" {
		t.Error("invalid result must not carry content fields")
	}
}

func TestValidateFeed_LogsFailures(t *testing.T) {
	logger := &mockLogger{}
	deps := interfaces.Dependencies{
		HTTPClient: feedClient("not xml", 200),
		Logger:     logger,
	}
	service := NewService(deps, config.DefaultValidationConfig())

	service.ValidateFeed(context.Background(), "bad", "https://example.com/rss")

	if len(logger.warnMsgs) != 1 {
		t.Errorf("expected one warning logged, got %d", len(logger.warnMsgs))
	}
}
