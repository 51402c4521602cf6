package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestBearerAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	testCases := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{name: "disabled", token: "", header: "", wantStatus: http.StatusNoContent},
		{name: "valid token", token: "secret", header: "Bearer secret", wantStatus: http.StatusNoContent},
		{name: "missing header", token: "secret", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", token: "secret", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", token: "secret", header: "Basic secret", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			middleware.BearerAuth(tc.token)(ok).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"UNAUTHORIZED"`)
			}
		})
	}
}
