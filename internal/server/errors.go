package server

import (
	"context"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"realty_analyzer/internal/domain"
	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
)

// toFailure переводит доменные ошибки в failure, по виду которого
// reply.Error выбирает HTTP статус. Остальные ошибки возвращаются как есть.
func toFailure(err error) error {
	appErr, ok := domain.AsAppError(err)
	if !ok {
		return err
	}

	msg := err.Error()
	code := failure.WithCode(appErr.Code)
	description := failure.WithDescription(appErr.Error())

	switch appErr.Code {
	case errcodes.InvalidPropertyParameters,
		errcodes.InvalidDealID,
		errcodes.InvalidLocation,
		errcodes.InvalidPasswordFormat,
		errcodes.InvalidPaging,
		errcodes.ValidationError:
		return failure.NewInvalidArgumentError(msg, code, description)
	case errcodes.DealNotFound, errcodes.UserNotFound, errcodes.NotFound:
		return failure.NewNotFoundError(msg, code, description)
	case errcodes.EmailAlreadyInUse:
		return failure.NewConflictError(msg, code, description)
	case errcodes.CredentialsMismatch, errcodes.AccessTokenInvalid, errcodes.AccessTokenExpired:
		return failure.NewUnauthorizedError(msg, code, description)
	case errcodes.InsightsUnavailable:
		return failure.NewUnprocessableEntityError(msg, code, description)
	default:
		return err
	}
}

func currentUserID(ctx context.Context) (contextx.UserID, error) {
	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return 0, failure.NewUnauthorizedError(
			fmt.Errorf("contextx.UserIDFromContext: %w", err).Error(),
			failure.WithCode(errcodes.AccessTokenInvalid),
		)
	}

	return userID, nil
}
