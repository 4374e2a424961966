package news

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>Test Feed</title>
<item>
  <guid>guid-1</guid>
  <title>First Story</title>
  <description>Something happened.</description>
  <link>https://example.com/first</link>
  <pubDate>Sun, 01 Mar 2026 09:00:00 GMT</pubDate>
  <media:content url="https://example.com/first.jpg" type="image/jpeg"/>
</item>
<item>
  <title>No GUID Story</title>
  <description>Second item.</description>
  <link>https://example.com/second</link>
  <enclosure url="https://example.com/second.png" type="image/png" length="1024"/>
</item>
<item>
  <title>Thumbnail Story</title>
  <description>Third item.</description>
  <link>https://example.com/third</link>
  <media:thumbnail url="https://example.com/third_thumb.jpg"/>
</item>
<item>
  <title>Bare Story</title>
  <description>Fourth item.</description>
</item>
</channel>
</rss>`

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSClient_Fetch(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	client := NewRSSClient(srv.URL)

	stories, err := client.Fetch(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(stories))

	first := stories[0]
	assert.Equal(t, "guid-1", first.GUID)
	assert.Equal(t, "First Story", first.Title)
	assert.Equal(t, "Something happened.", first.Summary)
	assert.Equal(t, "https://example.com/first", first.Link)
	assert.Equal(t, "RSS", first.Source)
	assert.Equal(t, "https://example.com/first.jpg", first.ImageURL)
	assert.Equal(t, 2026, first.PublishedAt.Year())
}

func TestRSSClient_FetchLimit(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	client := NewRSSClient(srv.URL)

	stories, err := client.Fetch(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(stories))
	assert.Equal(t, "guid-1", stories[0].GUID)
}

func TestRSSClient_GUIDFallsBackToLink(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	client := NewRSSClient(srv.URL)

	stories, err := client.Fetch(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, "https://example.com/second", stories[1].GUID)
}

func TestRSSClient_GUIDFallsBackToTitleHash(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	client := NewRSSClient(srv.URL)

	stories, err := client.Fetch(0)
	assert.Equal(t, nil, err)

	bare := stories[3]
	assert.Equal(t, fallbackGUID("Bare Story"), bare.GUID)
	assert.Equal(t, 16, len(bare.GUID))
}

func TestRSSClient_ImageFromEnclosureAndThumbnail(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	client := NewRSSClient(srv.URL)

	stories, err := client.Fetch(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, "https://example.com/second.png", stories[1].ImageURL)
	assert.Equal(t, "https://example.com/third_thumb.jpg", stories[2].ImageURL)
	assert.Equal(t, "", stories[3].ImageURL)
}

func TestRSSClient_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewRSSClient(srv.URL)
	_, err := client.Fetch(0)
	assert.NotEqual(t, nil, err)
}

func TestFallbackGUIDIsStable(t *testing.T) {
	assert.Equal(t, fallbackGUID("same seed"), fallbackGUID("same seed"))
	assert.NotEqual(t, fallbackGUID("seed a"), fallbackGUID("seed b"))
}
