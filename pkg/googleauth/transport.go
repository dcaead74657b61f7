package googleauth

import "net/http"

// NewHTTPClient wraps base with a transport that injects the bearer
// token and retries a request exactly once after a 401, invalidating
// the cached token in between. base nil means http.DefaultTransport.
func NewHTTPClient(base http.RoundTripper, tp TokenProvider) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{Transport: &authTransport{base: base, tokens: tp}}
}

type authTransport struct {
	base   http.RoundTripper
	tokens TokenProvider
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.send(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// Token likely expired server-side. Drop it and retry once with a
	// freshly minted one; a second 401 propagates to the caller.
	resp.Body.Close()
	t.tokens.InvalidateToken()

	retry, err := cloneRequest(req)
	if err != nil {
		return nil, err
	}
	return t.send(retry)
}

func (t *authTransport) send(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.AccessToken(req.Context())
	if err != nil {
		return nil, err
	}
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(r)
}

// cloneRequest rebuilds a request so its body can be sent again.
func cloneRequest(req *http.Request) (*http.Request, error) {
	r := req.Clone(req.Context())
	if req.Body == nil || req.GetBody == nil {
		return r, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	r.Body = body
	return r, nil
}
