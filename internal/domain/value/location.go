package value

import (
	"strings"
	"unicode/utf8"
)

const maxLocationLength = 120

// Location is a free-form market name such as "Austin, TX".
type Location string

func (l Location) String() string {
	return string(l)
}

// Normalize folds case and whitespace so equivalent spellings share a key.
func (l Location) Normalize() string {
	return strings.ToLower(strings.Join(strings.Fields(string(l)), " "))
}

func (l Location) IsEmpty() bool {
	return strings.TrimSpace(string(l)) == ""
}

func (l Location) Valid() bool {
	return !l.IsEmpty() && utf8.RuneCountInString(string(l)) <= maxLocationLength
}
