package news_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"realty_analyzer/internal/domain/value"
	"realty_analyzer/internal/infrastructure/news"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Local Housing</title>
    <link>https://example.com</link>
    <description>housing news</description>
    <item><title>Rents rise downtown</title><link>https://example.com/1</link></item>
    <item><title>   </title><link>https://example.com/blank</link></item>
    <item><title>New zoning rules approved</title><link>https://example.com/2</link></item>
    <item><title>Mortgage rates dip</title><link>https://example.com/3</link></item>
  </channel>
</rss>`

func TestFeedHeadlines(t *testing.T) {
	rq := require.New(t)

	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")

		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	}))
	defer server.Close()

	feed := news.NewFeed(server.URL+"/rss?q=%s", 2, time.Second)

	items, err := feed.Headlines(context.Background(), value.Location("Austin, TX"))
	rq.NoError(err)
	rq.Equal("Austin, TX", gotQuery)
	rq.Len(items, 2)
	rq.Equal("Rents rise downtown", items[0].Title)
	rq.Equal("https://example.com/1", items[0].Link)
	rq.Equal("Local Housing", items[0].Source)
	rq.Equal("New zoning rules approved", items[1].Title)
}

func TestFeedHeadlinesError(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	feed := news.NewFeed(server.URL+"/rss?q=%s", 5, time.Second)

	_, err := feed.Headlines(context.Background(), value.Location("Boise"))
	rq.Error(err)
}
