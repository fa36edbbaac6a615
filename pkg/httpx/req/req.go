package req

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"realty_analyzer/pkg/errcodes"
)

const maxBodyBytes = 1 << 20

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read decodes the JSON body into dest and runs struct validation.
func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return Validate(r, dest)
}

// Validate runs struct validation over an already decoded value.
func Validate(r *http.Request, dest any) error {
	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// ReadObject decodes a JSON object without a schema. Numbers are kept as
// json.Number so callers decide how to coerce them. An empty body yields an
// empty object.
func ReadObject(r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	result := make(map[string]any)

	if len(body) == 0 {
		return result, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	if err = decoder.Decode(&result); err != nil {
		return nil, failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return result, nil
}

// QueryInt reads a non-negative integer query parameter, falling back to def
// when the parameter is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid query parameter %q: %q", name, raw),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(fmt.Sprintf("%s must be a non-negative integer", name)),
		)
	}

	return v, nil
}
