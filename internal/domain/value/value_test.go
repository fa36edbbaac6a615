package value_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/internal/domain/value"
)

func TestVerdict(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		verdict value.Verdict
		reason  string
		color   string
	}{
		{value.VerdictAvoid, "negative cash flow", "red"},
		{value.VerdictMarginal, "low returns", "yellow"},
		{value.VerdictExcellent, "meets 1% rule, strong cash flow", "green"},
		{value.VerdictGood, "positive cash flow, decent investment", "blue"},
	}

	for _, tc := range testCases {
		t.Run(tc.verdict.String(), func(*testing.T) {
			rq.True(tc.verdict.Valid())
			rq.Equal(tc.reason, tc.verdict.Reason())
			rq.Equal(tc.color, tc.verdict.Color())
		})
	}

	rq.False(value.Verdict("MEH").Valid())
	rq.Empty(value.Verdict("MEH").Color())
}

func TestDealID(t *testing.T) {
	rq := require.New(t)

	id := value.NewDealID()
	rq.False(id.IsZero())

	parsed, err := value.ParseDealID(id.String())
	rq.NoError(err)
	rq.Equal(id, parsed)

	_, err = value.ParseDealID("not-a-uuid")
	rq.Error(err)
}

func TestLocation(t *testing.T) {
	rq := require.New(t)

	rq.Equal("austin, tx", value.Location("  Austin,   TX ").Normalize())
	rq.True(value.Location("Austin, TX").Valid())
	rq.False(value.Location("   ").Valid())
	rq.False(value.Location(strings.Repeat("a", 121)).Valid())
}

func TestEmail(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.Email("jane@example.com"), value.NewEmail("  Jane@Example.COM "))
}

func TestParseSentiment(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.SentimentBullish, value.ParseSentiment(" Bullish "))
	rq.Equal(value.SentimentBearish, value.ParseSentiment("BEARISH"))
	rq.Equal(value.SentimentNeutral, value.ParseSentiment("sideways"))
	rq.Equal(value.SentimentNeutral, value.ParseSentiment(""))
}
