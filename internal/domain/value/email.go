package value

import "strings"

type Email string

func NewEmail(s string) Email {
	return Email(strings.ToLower(strings.TrimSpace(s)))
}

func (e Email) String() string {
	return string(e)
}
