package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper добавляет ключ API в query-параметры каждого запроса.
// DaMIA ожидает ключ в параметре key, TenderGuru — в api_code.
type APIKeyRoundTripper struct {
	next      http.RoundTripper
	paramName string
	apiKey    string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	paramName string,
	apiKey string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:      next,
		paramName: paramName,
		apiKey:    apiKey,
	}
}

// RoundTrip implements http.RoundTripper interface.
func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper не должен мутировать исходный запрос.
	req = req.Clone(req.Context())

	query := req.URL.Query()
	query.Set(rt.paramName, rt.apiKey)
	req.URL.RawQuery = query.Encode()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
