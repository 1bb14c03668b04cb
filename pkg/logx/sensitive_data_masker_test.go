package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tender_bot/pkg/logx"
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
			name:   "API key query param",
			input:  []byte(`GET /api-zakupki/zsearch?q=%D1%86%D0%B5%D0%BC%D0%B5%D0%BD%D1%82&key=abc123def HTTP/1.1`),
			output: []byte(`GET /api-zakupki/zsearch?q=%D1%86%D0%B5%D0%BC%D0%B5%D0%BD%D1%82&key=[MASKED] HTTP/1.1`),
		},
		{
			name:   "API code query param",
			input:  []byte(`GET /api2.3/export/contracts?inn=7707083893&api_code=secret&dtype=json HTTP/1.1`),
			output: []byte(`GET /api2.3/export/contracts?inn=7707083893&api_code=[MASKED]&dtype=json HTTP/1.1`),
		},
		{
			name:   "Bot token in path",
			input:  []byte(`POST /bot123456:AAEhBOweik6ad9r_QXMENQjcrGbqCr4K-pk/sendMessage HTTP/1.1`),
			output: []byte(`POST /bot[MASKED]/sendMessage HTTP/1.1`),
		},
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "API key JSON field",
			input:  []byte(`{"api_key":"abc123","query":"бумага"}`),
			output: []byte(`{"api_key":"[MASKED]","query":"бумага"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
