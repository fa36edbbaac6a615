// Package llm talks to language model providers and turns their free-form
// answers into typed insight records.
package llm

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("empty model response")

type Request struct {
	System string
	Prompt string
	// JSON asks the provider for a JSON object answer when it supports it.
	JSON bool
}

// Completer is one chat-completion style provider.
type Completer interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}
