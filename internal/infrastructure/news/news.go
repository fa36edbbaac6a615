// Package news reads location headlines from an RSS or Atom search feed.
package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
)

type Feed struct {
	urlTemplate string
	limit       int
	parser      *gofeed.Parser
}

// NewFeed returns a feed reader. urlTemplate contains one %s that receives
// the query-escaped location, e.g.
// https://news.google.com/rss/search?q=%s+real+estate.
func NewFeed(urlTemplate string, limit int, timeout time.Duration) *Feed {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}

	return &Feed{
		urlTemplate: urlTemplate,
		limit:       limit,
		parser:      parser,
	}
}

func (f *Feed) Headlines(ctx context.Context, location value.Location) ([]entity.NewsItem, error) {
	feedURL := f.url(location)

	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parser.ParseURLWithContext: %w", err)
	}

	items := make([]entity.NewsItem, 0, min(f.limit, len(feed.Items)))

	for _, item := range feed.Items {
		if len(items) == f.limit {
			break
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		items = append(items, entity.NewsItem{
			Title:  title,
			Link:   item.Link,
			Source: feed.Title,
		})
	}

	return items, nil
}

func (f *Feed) url(location value.Location) string {
	query := url.QueryEscape(strings.TrimSpace(location.String()))

	if !strings.Contains(f.urlTemplate, "%s") {
		return f.urlTemplate
	}

	return fmt.Sprintf(f.urlTemplate, query)
}
