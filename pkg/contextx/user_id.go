package contextx

import (
	"context"
	"fmt"
	"strconv"
)

// UserID identifies the authenticated account owning the request.
type UserID int64

type contextKeyUserID struct{}

func (u UserID) String() string {
	return strconv.FormatInt(int64(u), 10)
}

func (u UserID) Int64() int64 {
	return int64(u)
}

func ParseUserID(s string) (UserID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseInt: %w", err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("user id must be positive, got %d", id)
	}

	return UserID(id), nil
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	userID, ok := ctx.Value(contextKeyUserID{}).(UserID)
	if !ok {
		return 0, fmt.Errorf("user id: %w", ErrNoValue)
	}

	return userID, nil
}
