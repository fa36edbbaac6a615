package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// errorResponse keeps the legacy {success, error} envelope next to the
// structured code/message pair.
type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Success:   false,
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var status int

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		status = http.StatusBadRequest
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		status = http.StatusNotFound
	case failure.IsUnauthorizedError(err):
		response.WithDefaultCode(errcodes.AccessTokenInvalid)
		status = http.StatusUnauthorized
	case failure.IsForbiddenError(err):
		response.WithDefaultCode(errcodes.Forbidden)
		status = http.StatusForbidden
	case failure.IsConflictError(err):
		status = http.StatusConflict
	case failure.IsUnprocessableEntityError(err):
		status = http.StatusUnprocessableEntity
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("error", logx.Error(err))

		// Internal details never leave the process.
		response.Message = "internal server error"
	} else {
		logger(ctx).Warn("client error", logx.Error(err), "status", status)
	}

	if response.Message == "" {
		response.Message = http.StatusText(status)
	}

	response.Error = response.Message

	JSON(ctx, w, status, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
