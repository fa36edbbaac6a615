package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/internal/domain"
	"realty_analyzer/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection reset")

	testCases := []struct {
		name     string
		err      error
		wantMsg  string
		wantCode string
	}{
		{
			name:     "plain",
			err:      domain.NewError(errcodes.DealNotFound, "deal not found"),
			wantMsg:  "deal not found",
			wantCode: "DealNotFound",
		},
		{
			name:     "field",
			err:      domain.NewFieldError(errcodes.InvalidPropertyParameters, "loanTerm", "must be positive"),
			wantMsg:  "loanTerm: must be positive",
			wantCode: "InvalidPropertyParameters",
		},
		{
			name:     "wrapped",
			err:      fmt.Errorf("repo.Get: %w", domain.WrapError(cause, errcodes.InternalServerError, "failed to get deal")),
			wantMsg:  "repo.Get: failed to get deal: connection reset",
			wantCode: "InternalServerError",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.EqualError(tc.err, tc.wantMsg)
			rq.True(domain.IsAppError(tc.err))

			code, ok := domain.GetCode(tc.err)
			rq.True(ok)
			rq.Equal(tc.wantCode, code.String())
		})
	}

	rq.ErrorIs(domain.WrapError(cause, errcodes.InternalServerError, "x"), cause)

	_, ok := domain.GetCode(cause)
	rq.False(ok)
}
