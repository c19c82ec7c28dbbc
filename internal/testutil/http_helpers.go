package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// This helper simplifies testing chi handlers that use chi.URLParam() to
// extract path parameters.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodPost,
//	    "/api/purchases/2024-3/status",
//	    map[string]string{"purchaseId": "2024-3"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewRequestWithQueryParams creates an HTTP request with query parameters.
// Repeated keys become repeated query values.
func NewRequestWithQueryParams(method, path string, params url.Values) *http.Request {
	target := path
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return httptest.NewRequest(method, target, nil)
}
