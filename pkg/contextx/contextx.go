// Package contextx stores request-scoped values (logger, trace id, user id)
// in context.Context.
package contextx

import "errors"

var ErrNoValue = errors.New("no value in context")
