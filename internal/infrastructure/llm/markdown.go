package llm

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// renderMarkdown converts the model summary to HTML. On a render error the
// caller keeps the plain text only.
func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer

	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buf.String(), nil
}
