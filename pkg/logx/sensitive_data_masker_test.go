package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"email":"a@b.c","password":"abc12345"}`),
			output: []byte(`{"email":"[MASKED]","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Issued token",
			input:  []byte(`{"success":true,"token":"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"}`),
			output: []byte(`{"success":true,"token":"[MASKED]"}`),
		},
		{
			name:   "Bearer header",
			input:  []byte("POST /v1/chat/completions HTTP/1.1\r\nAuthorization: Bearer sk-secret\r\n"),
			output: []byte("POST /v1/chat/completions HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
		{
			name:   "Property numbers stay visible",
			input:  []byte(`{"purchasePrice":300000,"monthlyRent":2000}`),
			output: []byte(`{"purchasePrice":300000,"monthlyRent":2000}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
