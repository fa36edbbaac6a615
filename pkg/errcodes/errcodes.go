package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	AccessTokenExpired  failure.ErrorCode = "AccessTokenExpired"
	AccessTokenInvalid  failure.ErrorCode = "AccessTokenInvalid"
	NotFound            failure.ErrorCode = "NotFound"
	CredentialsMismatch failure.ErrorCode = "CredentialsMismatch"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Users.
	EmailAlreadyInUse     failure.ErrorCode = "EmailAlreadyInUse"
	InvalidPasswordFormat failure.ErrorCode = "InvalidPasswordFormat"
	UserNotFound          failure.ErrorCode = "UserNotFound"

	// Analysis and deals.
	InvalidPropertyParameters failure.ErrorCode = "InvalidPropertyParameters"
	InvalidDealID             failure.ErrorCode = "InvalidDealID"
	DealNotFound              failure.ErrorCode = "DealNotFound"
	InvalidLocation           failure.ErrorCode = "InvalidLocation"

	// AI collaborator.
	InsightsUnavailable failure.ErrorCode = "InsightsUnavailable"
)
