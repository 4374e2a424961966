package news

import (
	"context"
	"strconv"
	"time"

	"github.com/keepitcheesy/agente/internal/model"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnHubClient adapts Finnhub general market news into story records, as an
// alternative to an RSS feed.
type FinnHubClient struct {
	client *finnhub.DefaultApiService
	now    func() time.Time
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client, now: time.Now}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(limit int) ([]model.Story, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var stories []model.Story

	for _, item := range res {
		if limit > 0 && len(stories) >= limit {
			break
		}

		s := model.Story{
			Source:    c.Name(),
			FetchedAt: c.now(),
		}

		if item.Id != nil {
			s.GUID = strconv.FormatInt(*item.Id, 10)
		}
		if item.Headline != nil {
			s.Title = *item.Headline
		}
		if item.Summary != nil {
			s.Summary = *item.Summary
		}
		if item.Url != nil {
			s.Link = *item.Url
			if s.GUID == "" {
				s.GUID = fallbackGUID(*item.Url)
			}
		}
		if item.Image != nil {
			s.ImageURL = *item.Image
		}
		if item.Datetime != nil {
			s.PublishedAt = time.Unix(*item.Datetime, 0)
		}
		if item.Source != nil {
			s.Publisher = *item.Source
		}

		stories = append(stories, s)
	}

	return stories, nil
}
