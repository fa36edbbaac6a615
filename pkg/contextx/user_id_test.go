package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/pkg/contextx"
)

func TestUserID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	userID, err := contextx.UserIDFromContext(ctx)
	rq.Zero(userID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "user id: no value in context")

	ctx = contextx.WithUserID(ctx, contextx.UserID(42))

	userID, err = contextx.UserIDFromContext(ctx)
	rq.Equal(contextx.UserID(42), userID)
	rq.Equal("42", userID.String())
	rq.NoError(err)
}

func TestParseUserID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		want    contextx.UserID
		wantErr bool
	}{
		{name: "Valid", input: "17", want: 17},
		{name: "Zero", input: "0", wantErr: true},
		{name: "Negative", input: "-3", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := contextx.ParseUserID(tc.input)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}
