package value

import "strings"

type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentNeutral Sentiment = "neutral"
	SentimentBearish Sentiment = "bearish"
)

// ParseSentiment maps free-form model output onto the three known values.
// Anything unrecognised is neutral.
func ParseSentiment(s string) Sentiment {
	switch v := Sentiment(strings.ToLower(strings.TrimSpace(s))); v {
	case SentimentBullish, SentimentBearish:
		return v
	default:
		return SentimentNeutral
	}
}
