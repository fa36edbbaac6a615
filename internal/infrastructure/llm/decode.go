package llm

import (
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

var errMissingField = errors.New("required field is empty")

type investmentAnswer struct {
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	Risks       []string `json:"risks"`
	Suggestions []string `json:"suggestions"`
}

func (a investmentAnswer) validate() error {
	if strings.TrimSpace(a.Summary) == "" {
		return fmt.Errorf("summary: %w", errMissingField)
	}

	return nil
}

type sentimentAnswer struct {
	Sentiment string   `json:"sentiment"`
	Outlook   string   `json:"outlook"`
	Factors   []string `json:"factors"`
}

func (a sentimentAnswer) validate() error {
	if strings.TrimSpace(a.Outlook) == "" {
		return fmt.Errorf("outlook: %w", errMissingField)
	}

	return nil
}

type validator interface {
	validate() error
}

// decodeAnswer tries strict JSON, then a repaired copy, then hjson. Models
// often wrap the object into a markdown fence or add trailing commas.
func decodeAnswer[T validator](raw string) (T, error) {
	var zero T

	text := stripFences(raw)
	if text == "" {
		return zero, ErrEmptyResponse
	}

	var errs []error

	for _, step := range []struct {
		name   string
		decode func(string, *T) error
	}{
		{name: "json", decode: decodeStrict[T]},
		{name: "json-repair", decode: decodeRepaired[T]},
		{name: "hjson", decode: decodeHJSON[T]},
	} {
		var answer T

		if err := step.decode(text, &answer); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))

			continue
		}

		if err := answer.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))

			continue
		}

		return answer, nil
	}

	return zero, errors.Join(errs...)
}

func decodeStrict[T any](text string, dest *T) error {
	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}

func decodeRepaired[T any](text string, dest *T) error {
	repaired, err := jsonrepair.RepairJSON(text)
	if err != nil {
		return fmt.Errorf("jsonrepair.RepairJSON: %w", err)
	}

	return decodeStrict(repaired, dest)
}

func decodeHJSON[T any](text string, dest *T) error {
	var generic any

	if err := hjson.Unmarshal([]byte(text), &generic); err != nil {
		return fmt.Errorf("hjson.Unmarshal: %w", err)
	}

	normalized, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return decodeStrict(string(normalized), dest)
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")

	// language tag after the opening fence
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
