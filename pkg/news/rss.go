package news

import (
	"strings"
	"time"

	"github.com/keepitcheesy/agente/internal/model"

	"github.com/mmcdole/gofeed"
)

// RSSClient reads stories from a single RSS/Atom feed. Feed order is
// preserved, so the first returned story is the feed's latest item.
type RSSClient struct {
	feedURL string
	parser  *gofeed.Parser
	now     func() time.Time
}

func NewRSSClient(feedURL string) *RSSClient {
	return &RSSClient{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
		now:     time.Now,
	}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Fetch(limit int) ([]model.Story, error) {
	feed, err := c.parser.ParseURL(c.feedURL)
	if err != nil {
		return nil, err
	}

	var stories []model.Story
	for _, item := range feed.Items {
		if limit > 0 && len(stories) >= limit {
			break
		}
		stories = append(stories, c.storyFromItem(item))
	}

	return stories, nil
}

func (c *RSSClient) storyFromItem(item *gofeed.Item) model.Story {
	guid := item.GUID
	if guid == "" {
		guid = item.Link
	}
	if guid == "" {
		guid = fallbackGUID(item.Title)
	}

	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}

	return model.Story{
		GUID:        guid,
		Title:       item.Title,
		Summary:     item.Description,
		Link:        item.Link,
		Source:      c.Name(),
		Publisher:   feedAuthor(item),
		ImageURL:    extractImageURL(item),
		PublishedAt: published,
		FetchedAt:   c.now(),
	}
}

func feedAuthor(item *gofeed.Item) string {
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

// extractImageURL looks for a story image in the places feeds commonly put
// one: media:content, enclosures, then media:thumbnail.
func extractImageURL(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if strings.HasPrefix(content.Attrs["type"], "image/") && content.Attrs["url"] != "" {
				return content.Attrs["url"]
			}
		}
	}

	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, thumb := range media["thumbnail"] {
			if thumb.Attrs["url"] != "" {
				return thumb.Attrs["url"]
			}
		}
	}

	if item.Image != nil {
		return item.Image.URL
	}

	return ""
}
